// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStripeTestGateway(t *testing.T, handler http.HandlerFunc) PaymentGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewStripeGateway(StripeConfig{
		BaseURL:   srv.URL,
		SecretKey: "sk_test_123",
		Timeout:   2 * time.Second,
	}, logger.Nop())
}

func TestStripeGateway_CreatePaymentIntent_Success(t *testing.T) {
	gw := newStripeTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, stripePaymentIntentsPath, r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "sk_test_123", user)
		assert.Empty(t, pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_abc"}`))
	})

	intent, err := gw.CreatePaymentIntent(context.Background(), 1999, "USD")
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_abc", intent.ClientSecret)
}

func TestStripeGateway_CreatePaymentIntent_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "card declined",
			status:  http.StatusPaymentRequired,
			body:    `{"error":{"type":"card_error","message":"Your card was declined."}}`,
			wantErr: ErrGatewayRejected,
			wantMsg: "Your card was declined.",
		},
		{
			name:    "bad request",
			status:  http.StatusBadRequest,
			body:    `{"error":{"type":"invalid_request_error","message":"Invalid currency"}}`,
			wantErr: ErrGatewayRejected,
			wantMsg: "Invalid currency",
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"message":"Too many requests"}}`,
			wantErr: ErrGatewayUnavailable,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: ErrGatewayUnavailable,
			wantMsg: "oops",
		},
		{
			name:    "missing client secret",
			status:  http.StatusOK,
			body:    `{"id":"pi_2"}`,
			wantErr: ErrGatewayUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newStripeTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := gw.CreatePaymentIntent(context.Background(), 500, "usd")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestStripeGateway_CreatePaymentIntent_InvalidAmount(t *testing.T) {
	called := false
	gw := newStripeTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := gw.CreatePaymentIntent(context.Background(), 0, "usd")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.False(t, called)
}

func TestStripeGateway_CreatePaymentIntent_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gw := NewStripeGateway(StripeConfig{BaseURL: url, SecretKey: "sk", Timeout: time.Second}, logger.Nop())

	_, err := gw.CreatePaymentIntent(context.Background(), 100, "usd")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestMapStatus(t *testing.T) {
	assert.NoError(t, mapStatus(http.StatusOK, ""))
	assert.NoError(t, mapStatus(http.StatusCreated, ""))
	assert.ErrorIs(t, mapStatus(http.StatusUnauthorized, ""), ErrGatewayRejected)
	assert.ErrorIs(t, mapStatus(http.StatusBadGateway, ""), ErrGatewayUnavailable)
	assert.ErrorIs(t, mapStatus(http.StatusFound, ""), ErrGatewayUnavailable)
	assert.Contains(t, mapStatus(http.StatusNotFound, "").Error(), "Not Found")
}

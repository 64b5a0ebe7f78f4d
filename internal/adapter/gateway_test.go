// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentGateway(t *testing.T) {
	t.Run("no secret key disables payments", func(t *testing.T) {
		gw, err := NewPaymentGateway(config.Payment{Provider: config.ProviderStripe}, logger.Nop())
		require.NoError(t, err)

		_, err = gw.CreatePaymentIntent(context.Background(), 100, "usd")
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})

	t.Run("stripe", func(t *testing.T) {
		gw, err := NewPaymentGateway(config.Payment{Provider: config.ProviderStripe, SecretKey: "sk"}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &stripeGateway{}, gw)
	})

	t.Run("midtrans", func(t *testing.T) {
		gw, err := NewPaymentGateway(config.Payment{Provider: config.ProviderMidtrans, SecretKey: "SB-Mid-server"}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &midtransGateway{}, gw)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewPaymentGateway(config.Payment{Provider: "paypal", SecretKey: "x"}, logger.Nop())
		assert.Error(t, err)
	})
}

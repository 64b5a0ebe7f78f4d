// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
	"github.com/go-resty/resty/v2"
)

const stripePaymentIntentsPath = "/v1/payment_intents"

type StripeConfig struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

type stripeGateway struct {
	client *resty.Client
	logger *logger.Logger
}

type stripePaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// NewStripeGateway returns a [PaymentGateway] talking to the Stripe REST API
// with the secret key as the basic auth user.
func NewStripeGateway(cfg StripeConfig, log *logger.Logger) PaymentGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.stripe.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.SecretKey, "")

	return &stripeGateway{client: cli, logger: log}
}

func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (models.PaymentIntent, error) {
	if amount <= 0 {
		return models.PaymentIntent{}, ErrInvalidAmount
	}

	var intent stripePaymentIntent
	resp, err := g.client.R().
		SetContext(ctx).
		SetFormDataFromValues(map[string][]string{
			"amount":                 {strconv.FormatInt(amount, 10)},
			"currency":               {strings.ToLower(currency)},
			"payment_method_types[]": {"card"},
		}).
		SetResult(&intent).
		Post(stripePaymentIntentsPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stripeGateway.CreatePaymentIntent").Msg("payment intent request failed")
		return models.PaymentIntent{}, fmt.Errorf("%w: create payment intent: %w", ErrGatewayUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*stripeGateway.CreatePaymentIntent").Int("status", resp.StatusCode()).Msg("payment intent refused")
		return models.PaymentIntent{}, err
	}

	if intent.ClientSecret == "" {
		return models.PaymentIntent{}, fmt.Errorf("%w: empty client secret", ErrGatewayUnavailable)
	}

	return models.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

// NewPaymentGateway builds the gateway named by cfg.Provider.
func NewPaymentGateway(cfg config.Payment, log *logger.Logger) (PaymentGateway, error) {
	if cfg.SecretKey == "" {
		log.Warn().Str("func", "NewPaymentGateway").Str("provider", cfg.Provider).Msg("no payment secret key configured, payments disabled")
		return disabledGateway{}, nil
	}

	switch cfg.Provider {
	case config.ProviderStripe, "":
		return NewStripeGateway(StripeConfig{
			BaseURL:   cfg.BaseURL,
			SecretKey: cfg.SecretKey,
			Timeout:   cfg.Timeout,
		}, log), nil
	case config.ProviderMidtrans:
		return NewMidtransGateway(cfg.SecretKey, cfg.Production, log), nil
	default:
		return nil, fmt.Errorf("unknown payment provider %q", cfg.Provider)
	}
}

type disabledGateway struct{}

func (disabledGateway) CreatePaymentIntent(context.Context, int64, string) (models.PaymentIntent, error) {
	return models.PaymentIntent{}, fmt.Errorf("%w: payments are not configured", ErrGatewayUnavailable)
}

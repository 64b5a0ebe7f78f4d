// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external payment gateways used by
// course-plus.
//
// The primary abstraction is [PaymentGateway], which decouples the service
// layer from the provider. Two implementations ship: Stripe over its REST
// API ([NewStripeGateway], resty) and Midtrans Snap ([NewMidtransGateway],
// midtrans-go). [NewPaymentGateway] picks one from configuration and falls
// back to a gateway that always reports [ErrGatewayUnavailable] when no
// secret key is configured.
//
// Provider errors are mapped onto [ErrGatewayRejected] and
// [ErrGatewayUnavailable] so callers can use [errors.Is] without knowing the
// provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/course-plus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payment_gateway_mock.go -package=mock

// PaymentGateway creates payment intents with an external provider.
type PaymentGateway interface {
	// CreatePaymentIntent requests an intent for amount minor units of
	// currency and returns the secret the front end confirms it with.
	// No idempotency key is sent: every call creates a new intent.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (models.PaymentIntent, error)
}

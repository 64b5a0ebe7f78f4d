// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/adapter"
	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/validators"
	"github.com/MKhiriev/course-plus/models"
)

type paymentService struct {
	paymentRepository store.PaymentRepository
	gateway           adapter.PaymentGateway
	currency          string
	validator         validators.Validator

	logger *logger.Logger
}

func NewPaymentService(paymentRepository store.PaymentRepository, gateway adapter.PaymentGateway, cfg config.Payment, validator validators.Validator, logger *logger.Logger) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		gateway:           gateway,
		currency:          cfg.Currency,
		validator:         validator,
		logger:            logger,
	}
}

// CreatePaymentIntent converts the major-unit price to minor units
// (truncated) and asks the gateway for an intent in the configured currency.
func (p *paymentService) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntent, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, p.validator, req); err != nil {
		log.Err(err).Str("func", "*paymentService.CreatePaymentIntent").Float64("price", req.Price).Msg("invalid price")
		return models.PaymentIntent{}, err
	}

	amount := req.MinorUnits()
	if amount <= 0 {
		log.Error().Str("func", "*paymentService.CreatePaymentIntent").Float64("price", req.Price).Msg("price below one minor unit")
		return models.PaymentIntent{}, fmt.Errorf("%w: price below one minor unit", ErrInvalidDataProvided)
	}

	intent, err := p.gateway.CreatePaymentIntent(ctx, amount, p.currency)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.CreatePaymentIntent").Int64("amount", amount).Str("currency", p.currency).Msg("payment intent creation failed")
		return models.PaymentIntent{}, fmt.Errorf("payment intent creation failed: %w", err)
	}

	return intent, nil
}

func (p *paymentService) RecordPayment(ctx context.Context, payment models.Payment) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, p.validator, payment); err != nil {
		log.Err(err).Str("func", "*paymentService.RecordPayment").Msg("invalid payment")
		return models.InsertResult{}, err
	}

	result, err := p.paymentRepository.CreatePayment(ctx, payment)
	if err != nil {
		log.Err(err).Str("func", "*paymentService.RecordPayment").Str("email", payment.Email).Msg("payment record failed")
		return models.InsertResult{}, fmt.Errorf("payment record failed: %w", err)
	}

	return result, nil
}

func (p *paymentService) FindPayments(ctx context.Context, email string) ([]models.Payment, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: empty email", ErrInvalidDataProvided)
	}

	payments, err := p.paymentRepository.FindPaymentsByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*paymentService.FindPayments").Str("email", email).Msg("payment search failed")
		return nil, fmt.Errorf("payment search failed: %w", err)
	}

	return payments, nil
}

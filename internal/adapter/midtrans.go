// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

const midtransOrderPrefix = "course-plus-"

// snapTransactor is the part of snap.Client the gateway uses.
type snapTransactor interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

type midtransGateway struct {
	snap   snapTransactor
	logger *logger.Logger
}

// NewMidtransGateway returns a [PaymentGateway] backed by Midtrans Snap. The
// Snap token is returned as the client secret.
func NewMidtransGateway(serverKey string, production bool, log *logger.Logger) PaymentGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(serverKey, env)

	return &midtransGateway{snap: &client, logger: log}
}

// CreatePaymentIntent charges whole units: Midtrans amounts have no minor
// unit, so amount is divided by 100 and truncated.
func (g *midtransGateway) CreatePaymentIntent(ctx context.Context, amount int64, _ string) (models.PaymentIntent, error) {
	gross := amount / 100
	if gross <= 0 {
		return models.PaymentIntent{}, ErrInvalidAmount
	}

	orderID := midtransOrderPrefix + uuid.NewString()
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: gross,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
	}

	resp, mtErr := g.snap.CreateTransaction(req)
	if mtErr != nil {
		err := mapStatus(mtErr.StatusCode, mtErr.Message)
		if err == nil || mtErr.StatusCode == 0 {
			err = fmt.Errorf("%w: %s", ErrGatewayUnavailable, mtErr.Message)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*midtransGateway.CreatePaymentIntent").Str("order_id", orderID).Msg("snap transaction failed")
		return models.PaymentIntent{}, err
	}

	if resp == nil || resp.Token == "" {
		return models.PaymentIntent{}, fmt.Errorf("%w: empty snap token", ErrGatewayUnavailable)
	}

	return models.PaymentIntent{ID: orderID, ClientSecret: resp.Token}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Payment is the record a client stores after a confirmed payment intent.
type Payment struct {
	ID            string    `json:"_id" bson:"_id"`
	Email         string    `json:"email" bson:"email" validate:"required,email"`
	CourseID      string    `json:"courseId" bson:"courseId" validate:"required"`
	Price         float64   `json:"price" bson:"price" validate:"gte=0"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

func (p Payment) TableName() string {
	return "payments"
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
// Price is in major currency units.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

// MinorUnits converts Price to the gateway's integer minor units,
// truncating any fraction below one minor unit.
func (r PaymentIntentRequest) MinorUnits() int64 {
	return int64(math.Trunc(r.Price * 100))
}

// PaymentIntent is what the gateway returns for a created intent.
type PaymentIntent struct {
	ID           string `json:"id,omitempty"`
	ClientSecret string `json:"clientSecret"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Enrollment links a user (by email) to a course (by EnrollID).
type Enrollment struct {
	ID            string    `json:"_id" bson:"_id"`
	EnrollID      string    `json:"enrollId" bson:"enrollId" validate:"required"`
	Email         string    `json:"email" bson:"email" validate:"required,email"`
	Title         string    `json:"title" bson:"title"`
	Name          string    `json:"name" bson:"name"`
	Image         string    `json:"image" bson:"image"`
	Price         float64   `json:"price" bson:"price"`
	TransactionID string    `json:"transactionId" bson:"transactionId"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

func (e Enrollment) TableName() string {
	return "enrollments"
}

// EnrollmentFilter narrows an enrollments lookup.
type EnrollmentFilter struct {
	Email    string
	EnrollID string
}

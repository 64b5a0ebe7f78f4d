// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

var paymentColumns = []string{"id", "email", "course_id", "price", "transaction_id", "created_at"}

type paymentRepository struct {
	*DB
	logger *logger.Logger
}

func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, p models.Payment) (models.InsertResult, error) {
	id := r.newID()
	query := r.builder.Insert("payments").
		Columns(paymentColumns...).
		Values(id, p.Email, p.CourseID, p.Price, p.TransactionID, r.timestamp())

	return r.insert(ctx, id, query)
}

func (r *paymentRepository) FindPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	query := r.builder.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"email": email}).
		OrderBy("id ASC")

	return selectAll(ctx, r.DB, query, func(row rowScanner) (models.Payment, error) {
		var p models.Payment
		err := row.Scan(&p.ID, &p.Email, &p.CourseID, &p.Price, &p.TransactionID, &p.CreatedAt)
		return p, err
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

var enrollmentColumns = []string{"id", "enroll_id", "email", "title", "name", "image", "price", "transaction_id", "created_at"}

type enrollmentRepository struct {
	*DB
	logger *logger.Logger
}

func NewEnrollmentRepository(db *DB, logger *logger.Logger) EnrollmentRepository {
	logger.Debug().Msg("creating enrollment repository")
	return &enrollmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *enrollmentRepository) CreateEnrollment(ctx context.Context, e models.Enrollment) (models.InsertResult, error) {
	id := r.newID()
	query := r.builder.Insert("enrollments").
		Columns(enrollmentColumns...).
		Values(id, e.EnrollID, e.Email, e.Title, e.Name, e.Image, e.Price, e.TransactionID, r.timestamp())

	return r.insert(ctx, id, query)
}

func (r *enrollmentRepository) FindEnrollments(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error) {
	query := r.builder.Select(enrollmentColumns...).From("enrollments").OrderBy("id ASC")

	if filter.Email != "" {
		query = query.Where(sq.Eq{"email": filter.Email})
	}
	if filter.EnrollID != "" {
		query = query.Where(sq.Eq{"enroll_id": filter.EnrollID})
	}

	return selectAll(ctx, r.DB, query, func(row rowScanner) (models.Enrollment, error) {
		var e models.Enrollment
		err := row.Scan(&e.ID, &e.EnrollID, &e.Email, &e.Title, &e.Name, &e.Image, &e.Price, &e.TransactionID, &e.CreatedAt)
		return e, err
	})
}

func (r *enrollmentRepository) CountEnrollments(ctx context.Context) (int64, error) {
	return r.count(ctx, "enrollments")
}

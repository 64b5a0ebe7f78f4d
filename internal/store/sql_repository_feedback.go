// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

var feedbackColumns = []string{"id", "course_id", "title", "email", "name", "image", "rating", "description", "created_at"}

type feedbackRepository struct {
	*DB
	logger *logger.Logger
}

func NewFeedbackRepository(db *DB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating feedback repository")
	return &feedbackRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, f models.Feedback) (models.InsertResult, error) {
	id := r.newID()
	query := r.builder.Insert("feedbacks").
		Columns(feedbackColumns...).
		Values(id, f.CourseID, f.Title, f.Email, f.Name, f.Image, f.Rating, f.Description, r.timestamp())

	return r.insert(ctx, id, query)
}

func (r *feedbackRepository) FindFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	query := r.builder.Select(feedbackColumns...).From("feedbacks").OrderBy("id ASC")

	return selectAll(ctx, r.DB, query, func(row rowScanner) (models.Feedback, error) {
		var f models.Feedback
		err := row.Scan(&f.ID, &f.CourseID, &f.Title, &f.Email, &f.Name, &f.Image, &f.Rating, &f.Description, &f.CreatedAt)
		return f, err
	})
}

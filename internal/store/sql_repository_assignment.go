// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

var (
	assignmentColumns = []string{"id", "course_id", "title", "description", "deadline", "submission_count", "created_at"}
	submissionColumns = []string{"id", "assignment_id", "course_id", "email", "link", "note", "created_at"}
)

type assignmentRepository struct {
	*DB
	logger *logger.Logger
}

func NewAssignmentRepository(db *DB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating assignment repository")
	return &assignmentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *assignmentRepository) CreateAssignment(ctx context.Context, a models.Assignment) (models.InsertResult, error) {
	id := r.newID()
	query := r.builder.Insert("assignments").
		Columns(assignmentColumns...).
		Values(id, a.CourseID, a.Title, a.Description, a.Deadline, a.SubmissionCount, r.timestamp())

	return r.insert(ctx, id, query)
}

func (r *assignmentRepository) FindAssignmentsByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	query := r.builder.Select(assignmentColumns...).
		From("assignments").
		Where(sq.Eq{"course_id": courseID}).
		OrderBy("id ASC")

	return selectAll(ctx, r.DB, query, func(row rowScanner) (models.Assignment, error) {
		var a models.Assignment
		err := row.Scan(&a.ID, &a.CourseID, &a.Title, &a.Description, &a.Deadline, &a.SubmissionCount, &a.CreatedAt)
		return a, err
	})
}

func (r *assignmentRepository) IncrementSubmissions(ctx context.Context, id string) (models.UpdateResult, error) {
	query := r.builder.Update("assignments").
		Set("submission_count", sq.Expr("submission_count + 1")).
		Where(sq.Eq{"id": id})

	return r.update(ctx, id, query)
}

type submissionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *submissionRepository) CreateSubmission(ctx context.Context, s models.Submission) (models.InsertResult, error) {
	id := r.newID()
	query := r.builder.Insert("submissions").
		Columns(submissionColumns...).
		Values(id, s.AssignmentID, s.CourseID, s.Email, s.Link, s.Note, r.timestamp())

	return r.insert(ctx, id, query)
}

func (r *submissionRepository) FindSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	query := r.builder.Select(submissionColumns...).
		From("submissions").
		Where(sq.Eq{"assignment_id": assignmentID}).
		OrderBy("id ASC")

	return selectAll(ctx, r.DB, query, func(row rowScanner) (models.Submission, error) {
		var s models.Submission
		err := row.Scan(&s.ID, &s.AssignmentID, &s.CourseID, &s.Email, &s.Link, &s.Note, &s.CreatedAt)
		return s, err
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

var teacherColumns = []string{"id", "email", "name", "image", "title", "category", "experience", "status", "created_at"}

type teacherRepository struct {
	*DB
	logger *logger.Logger
}

func NewTeacherRepository(db *DB, logger *logger.Logger) TeacherRepository {
	logger.Debug().Msg("creating teacher repository")
	return &teacherRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *teacherRepository) CreateApplication(ctx context.Context, a models.TeacherApplication) (models.InsertResult, error) {
	id := r.newID()
	query := r.builder.Insert("teachers").
		Columns(teacherColumns...).
		Values(id, a.Email, a.Name, a.Image, a.Title, a.Category, a.Experience, string(a.Status), r.timestamp())

	return r.insert(ctx, id, query)
}

func (r *teacherRepository) FindApplications(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherApplication, error) {
	query := r.builder.Select(teacherColumns...).From("teachers").OrderBy("id ASC")

	if filter.Email != "" {
		query = query.Where(sq.Eq{"email": filter.Email})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}

	return selectAll(ctx, r.DB, query, scanTeacherApplication)
}

// FindApplicationByEmail returns the earliest application of the email.
func (r *teacherRepository) FindApplicationByEmail(ctx context.Context, email string) (models.TeacherApplication, error) {
	query := r.builder.Select(teacherColumns...).
		From("teachers").
		Where(sq.Eq{"email": email}).
		OrderBy("id ASC")

	return selectOne(ctx, r.DB, query, scanTeacherApplication)
}

func (r *teacherRepository) SetApplicationStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error) {
	query := r.builder.Update("teachers").Set("status", string(status)).Where(sq.Eq{"id": id})
	return r.update(ctx, id, query)
}

func scanTeacherApplication(row rowScanner) (models.TeacherApplication, error) {
	var a models.TeacherApplication
	var status string
	err := row.Scan(&a.ID, &a.Email, &a.Name, &a.Image, &a.Title, &a.Category, &a.Experience, &status, &a.CreatedAt)
	a.Status = models.Status(status)
	return a, err
}

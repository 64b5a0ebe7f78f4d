// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

var courseColumns = []string{
	"id", "title", "name", "email", "image", "price",
	"description", "status", "total_enrollment", "created_at",
}

// courseRepository is the SQL-backed implementation of [CourseRepository].
type courseRepository struct {
	*DB
	logger *logger.Logger
}

func NewCourseRepository(db *DB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating course repository")
	return &courseRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *courseRepository) CreateCourse(ctx context.Context, course models.Course) (models.InsertResult, error) {
	id := r.newID()
	query := r.builder.Insert("courses").
		Columns(courseColumns...).
		Values(id, course.Title, course.Name, course.Email, course.Image, course.Price,
			course.Description, string(course.Status), course.TotalEnrollment, r.timestamp())

	return r.insert(ctx, id, query)
}

func (r *courseRepository) FindCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	query := r.builder.Select(courseColumns...).From("courses").OrderBy("id ASC")

	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}
	if filter.Email != "" {
		query = query.Where(sq.Eq{"email": filter.Email})
	}

	return selectAll(ctx, r.DB, query, scanCourse)
}

func (r *courseRepository) FindCourseByID(ctx context.Context, id string) (models.Course, error) {
	if id == "" {
		return models.Course{}, ErrInvalidID
	}

	query := r.builder.Select(courseColumns...).From("courses").Where(sq.Eq{"id": id})
	return selectOne(ctx, r.DB, query, scanCourse)
}

func (r *courseRepository) UpdateCourse(ctx context.Context, id, owner string, update models.CourseUpdate) (models.UpdateResult, error) {
	fields := make(map[string]any, 4)
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Image != nil {
		fields["image"] = *update.Image
	}
	if update.Price != nil {
		fields["price"] = *update.Price
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if len(fields) == 0 {
		return models.UpdateResult{}, fmt.Errorf("%w: empty course update", ErrBuildingQuery)
	}

	query := r.builder.Update("courses").SetMap(fields).Where(ownedBy(id, owner))
	return r.update(ctx, id, query)
}

func (r *courseRepository) SetCourseStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error) {
	query := r.builder.Update("courses").Set("status", string(status)).Where(sq.Eq{"id": id})
	return r.update(ctx, id, query)
}

func (r *courseRepository) DeleteCourse(ctx context.Context, id, owner string) (models.DeleteResult, error) {
	if id == "" {
		return models.DeleteResult{}, ErrInvalidID
	}

	affected, err := r.exec(ctx, r.builder.Delete("courses").Where(ownedBy(id, owner)))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseRepository.DeleteCourse").Str("id", id).Msg("error deleting course")
		return models.DeleteResult{}, err
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: affected}, nil
}

func (r *courseRepository) FindPopularCourses(ctx context.Context, limit int) ([]models.Course, error) {
	query := r.builder.Select(courseColumns...).
		From("courses").
		Where(sq.Eq{"status": string(models.StatusApproved)}).
		OrderBy("total_enrollment DESC", "id ASC").
		Limit(uint64(max(limit, 0)))

	return selectAll(ctx, r.DB, query, scanCourse)
}

// IncrementEnrollment runs a single UPDATE with an in-place increment, so
// concurrent calls never lose an update.
func (r *courseRepository) IncrementEnrollment(ctx context.Context, id string) (models.UpdateResult, error) {
	query := r.builder.Update("courses").
		Set("total_enrollment", sq.Expr("total_enrollment + 1")).
		Where(sq.Eq{"id": id})

	return r.update(ctx, id, query)
}

func (r *courseRepository) SumEnrollment(ctx context.Context, id string) (int64, error) {
	stmt, args, err := r.builder.Select("COALESCE(SUM(total_enrollment), 0)").
		From("courses").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var sum int64
	if err := r.QueryRowContext(ctx, stmt, args...).Scan(&sum); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseRepository.SumEnrollment").Str("id", id).Msg("error summing enrollment")
		return 0, r.wrapError(ErrExecutingQuery, err)
	}

	return sum, nil
}

func (r *courseRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.count(ctx, "courses")
}

func scanCourse(row rowScanner) (models.Course, error) {
	var c models.Course
	var status string
	err := row.Scan(&c.ID, &c.Title, &c.Name, &c.Email, &c.Image, &c.Price,
		&c.Description, &status, &c.TotalEnrollment, &c.CreatedAt)
	c.Status = models.Status(status)
	return c, err
}

// ownedBy matches the course id, and its email when owner is set.
func ownedBy(id, owner string) sq.Eq {
	cond := sq.Eq{"id": id}
	if owner != "" {
		cond["email"] = owner
	}
	return cond
}

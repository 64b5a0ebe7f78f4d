// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

type mongoCourseRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoCourseRepository(db *MongoDB, logger *logger.Logger) CourseRepository {
	logger.Debug().Msg("creating mongo course repository")
	return &mongoCourseRepository{
		MongoDB: db,
		logger:  logger,
	}
}

func (r *mongoCourseRepository) CreateCourse(ctx context.Context, course models.Course) (models.InsertResult, error) {
	return r.insertOne(ctx, collectionCourses, course)
}

func (r *mongoCourseRepository) FindCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	return findAll[models.Course](ctx, r.MongoDB, collectionCourses, courseFilter(filter), sortByID())
}

func (r *mongoCourseRepository) FindCourseByID(ctx context.Context, id string) (models.Course, error) {
	filter, err := idFilter(id)
	if err != nil {
		return models.Course{}, err
	}
	return findOne[models.Course](ctx, r.MongoDB, collectionCourses, filter)
}

func (r *mongoCourseRepository) UpdateCourse(ctx context.Context, id, owner string, update models.CourseUpdate) (models.UpdateResult, error) {
	doc := courseUpdateDoc(update)
	if doc == nil {
		return models.UpdateResult{}, fmt.Errorf("%w: empty course update", ErrBuildingQuery)
	}

	filter, err := ownedCourseFilter(id, owner)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return r.updateOne(ctx, collectionCourses, filter, doc)
}

func (r *mongoCourseRepository) SetCourseStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error) {
	return r.updateByID(ctx, collectionCourses, id, setField("status", string(status)))
}

func (r *mongoCourseRepository) DeleteCourse(ctx context.Context, id, owner string) (models.DeleteResult, error) {
	filter, err := ownedCourseFilter(id, owner)
	if err != nil {
		return models.DeleteResult{}, err
	}

	res, err := r.collection(collectionCourses).DeleteOne(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCourseRepository.DeleteCourse").Str("id", id).Msg("error deleting course")
		return models.DeleteResult{}, r.wrapError(ErrExecutingStatement, err)
	}

	return models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *mongoCourseRepository) FindPopularCourses(ctx context.Context, limit int) ([]models.Course, error) {
	filter, opts := popularCoursesQuery(limit)
	return findAll[models.Course](ctx, r.MongoDB, collectionCourses, filter, opts)
}

// IncrementEnrollment uses $inc, which MongoDB applies atomically to a
// single document.
func (r *mongoCourseRepository) IncrementEnrollment(ctx context.Context, id string) (models.UpdateResult, error) {
	return r.updateByID(ctx, collectionCourses, id, incrementField("totalEnrollment"))
}

func (r *mongoCourseRepository) SumEnrollment(ctx context.Context, id string) (int64, error) {
	pipeline, err := sumEnrollmentPipeline(id)
	if err != nil {
		return 0, err
	}

	cursor, err := r.collection(collectionCourses).Aggregate(ctx, pipeline)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoCourseRepository.SumEnrollment").Str("id", id).Msg("error aggregating enrollment")
		return 0, r.wrapError(ErrExecutingQuery, err)
	}

	var results []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, r.wrapError(ErrScanningRows, err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Count, nil
}

func (r *mongoCourseRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.estimatedCount(ctx, collectionCourses)
}

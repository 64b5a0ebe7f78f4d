// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/validators"
	"github.com/MKhiriev/course-plus/models"
)

// PopularCoursesLimit caps the popular courses listing.
const PopularCoursesLimit = 4

type courseService struct {
	courseRepository store.CourseRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewCourseService(courseRepository store.CourseRepository, validator validators.Validator, logger *logger.Logger) CourseService {
	return &courseService{
		courseRepository: courseRepository,
		validator:        validator,
		logger:           logger,
	}
}

// CreateCourse stores a new course as pending with no enrollments,
// whatever status or count the caller sent.
func (c *courseService) CreateCourse(ctx context.Context, course models.Course) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, c.validator, course); err != nil {
		log.Err(err).Str("func", "*courseService.CreateCourse").Msg("invalid course data provided")
		return models.InsertResult{}, err
	}

	course.Status = models.StatusPending
	course.TotalEnrollment = 0

	result, err := c.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Str("func", "*courseService.CreateCourse").Msg("course creation failed")
		return models.InsertResult{}, fmt.Errorf("course creation failed: %w", err)
	}

	return result, nil
}

func (c *courseService) FindCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	courses, err := c.courseRepository.FindCourses(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseService.FindCourses").Msg("course search failed")
		return nil, fmt.Errorf("course search failed: %w", err)
	}

	return courses, nil
}

func (c *courseService) GetCourse(ctx context.Context, id string) (models.Course, error) {
	if err := requireID(id); err != nil {
		return models.Course{}, err
	}

	course, err := c.courseRepository.FindCourseByID(ctx, id)
	if err != nil {
		return models.Course{}, fmt.Errorf("course search by id failed: %w", err)
	}

	return course, nil
}

func (c *courseService) UpdateCourse(ctx context.Context, id, owner string, update models.CourseUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	if err := requireID(id); err != nil {
		return models.UpdateResult{}, err
	}
	if update.IsEmpty() {
		log.Error().Str("func", "*courseService.UpdateCourse").Str("id", id).Msg("empty course update")
		return models.UpdateResult{}, fmt.Errorf("%w: nothing to update", ErrInvalidDataProvided)
	}
	if err := validate(ctx, c.validator, update); err != nil {
		log.Err(err).Str("func", "*courseService.UpdateCourse").Str("id", id).Msg("invalid course update")
		return models.UpdateResult{}, err
	}

	result, err := c.courseRepository.UpdateCourse(ctx, id, owner, update)
	if err != nil {
		log.Err(err).Str("func", "*courseService.UpdateCourse").Str("id", id).Msg("course update failed")
		return models.UpdateResult{}, fmt.Errorf("course update failed: %w", err)
	}
	if owner != "" && result.MatchedCount == 0 {
		log.Warn().Str("func", "*courseService.UpdateCourse").Str("id", id).Str("owner", owner).Msg("course not owned by caller")
		return models.UpdateResult{}, notOwned(id, owner)
	}

	return result, nil
}

func (c *courseService) SetCourseStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error) {
	if err := requireID(id); err != nil {
		return models.UpdateResult{}, err
	}
	if err := validate(ctx, c.validator, models.StatusUpdate{Status: status}); err != nil {
		return models.UpdateResult{}, err
	}

	result, err := c.courseRepository.SetCourseStatus(ctx, id, status)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseService.SetCourseStatus").Str("id", id).Msg("course status update failed")
		return models.UpdateResult{}, fmt.Errorf("course status update failed: %w", err)
	}

	return result, nil
}

func (c *courseService) DeleteCourse(ctx context.Context, id, owner string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	if err := requireID(id); err != nil {
		return models.DeleteResult{}, err
	}

	result, err := c.courseRepository.DeleteCourse(ctx, id, owner)
	if err != nil {
		log.Err(err).Str("func", "*courseService.DeleteCourse").Str("id", id).Msg("course deletion failed")
		return models.DeleteResult{}, fmt.Errorf("course deletion failed: %w", err)
	}
	if owner != "" && result.DeletedCount == 0 {
		log.Warn().Str("func", "*courseService.DeleteCourse").Str("id", id).Str("owner", owner).Msg("course not owned by caller")
		return models.DeleteResult{}, notOwned(id, owner)
	}

	return result, nil
}

func (c *courseService) PopularCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := c.courseRepository.FindPopularCourses(ctx, PopularCoursesLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseService.PopularCourses").Msg("popular courses search failed")
		return nil, fmt.Errorf("popular courses search failed: %w", err)
	}

	return courses, nil
}

// IncrementEnrollment adds one to the course's totalEnrollment in a single
// atomic store update.
func (c *courseService) IncrementEnrollment(ctx context.Context, id string) (models.UpdateResult, error) {
	if err := requireID(id); err != nil {
		return models.UpdateResult{}, err
	}

	result, err := c.courseRepository.IncrementEnrollment(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseService.IncrementEnrollment").Str("id", id).Msg("enrollment increment failed")
		return models.UpdateResult{}, fmt.Errorf("enrollment increment failed: %w", err)
	}

	return result, nil
}

func (c *courseService) EnrollmentCount(ctx context.Context, id string) (models.EnrollmentCount, error) {
	if err := requireID(id); err != nil {
		return models.EnrollmentCount{}, err
	}

	sum, err := c.courseRepository.SumEnrollment(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*courseService.EnrollmentCount").Str("id", id).Msg("enrollment count failed")
		return models.EnrollmentCount{}, fmt.Errorf("enrollment count failed: %w", err)
	}

	return models.EnrollmentCount{Count: sum}, nil
}

// notOwned hides whether the course exists at all.
func notOwned(id, owner string) error {
	return fmt.Errorf("%w: course %s has no owner %s", store.ErrNotFound, id, owner)
}

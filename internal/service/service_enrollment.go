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

type enrollmentService struct {
	enrollmentRepository store.EnrollmentRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewEnrollmentService(enrollmentRepository store.EnrollmentRepository, validator validators.Validator, logger *logger.Logger) EnrollmentService {
	return &enrollmentService{
		enrollmentRepository: enrollmentRepository,
		validator:            validator,
		logger:               logger,
	}
}

// Enroll records the enrollment only. The course counter is bumped by a
// separate call (PATCH /courseForEnrollId/{id}).
func (e *enrollmentService) Enroll(ctx context.Context, enrollment models.Enrollment) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, e.validator, enrollment); err != nil {
		log.Err(err).Str("func", "*enrollmentService.Enroll").Msg("invalid enrollment")
		return models.InsertResult{}, err
	}

	result, err := e.enrollmentRepository.CreateEnrollment(ctx, enrollment)
	if err != nil {
		log.Err(err).Str("func", "*enrollmentService.Enroll").Str("email", enrollment.Email).Str("enroll_id", enrollment.EnrollID).Msg("enrollment failed")
		return models.InsertResult{}, fmt.Errorf("enrollment failed: %w", err)
	}

	return result, nil
}

func (e *enrollmentService) FindEnrollments(ctx context.Context, email string) ([]models.Enrollment, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: empty email", ErrInvalidDataProvided)
	}

	enrollments, err := e.enrollmentRepository.FindEnrollments(ctx, models.EnrollmentFilter{Email: email})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*enrollmentService.FindEnrollments").Str("email", email).Msg("enrollment search failed")
		return nil, fmt.Errorf("enrollment search failed: %w", err)
	}

	return enrollments, nil
}

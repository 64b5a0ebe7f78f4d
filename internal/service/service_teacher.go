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

type teacherService struct {
	teacherRepository store.TeacherRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewTeacherService(teacherRepository store.TeacherRepository, validator validators.Validator, logger *logger.Logger) TeacherService {
	return &teacherService{
		teacherRepository: teacherRepository,
		validator:         validator,
		logger:            logger,
	}
}

// Apply stores a pending teacher application.
func (t *teacherService) Apply(ctx context.Context, application models.TeacherApplication) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, t.validator, application); err != nil {
		log.Err(err).Str("func", "*teacherService.Apply").Msg("invalid teacher application")
		return models.InsertResult{}, err
	}

	application.Status = models.StatusPending

	result, err := t.teacherRepository.CreateApplication(ctx, application)
	if err != nil {
		log.Err(err).Str("func", "*teacherService.Apply").Str("email", application.Email).Msg("teacher application failed")
		return models.InsertResult{}, fmt.Errorf("teacher application failed: %w", err)
	}

	return result, nil
}

func (t *teacherService) FindApplications(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherApplication, error) {
	applications, err := t.teacherRepository.FindApplications(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*teacherService.FindApplications").Msg("teacher application search failed")
		return nil, fmt.Errorf("teacher application search failed: %w", err)
	}

	return applications, nil
}

func (t *teacherService) GetApplication(ctx context.Context, email string) (models.TeacherApplication, error) {
	if email == "" {
		return models.TeacherApplication{}, fmt.Errorf("%w: empty email", ErrInvalidDataProvided)
	}

	application, err := t.teacherRepository.FindApplicationByEmail(ctx, email)
	if err != nil {
		return models.TeacherApplication{}, fmt.Errorf("teacher application search by email failed: %w", err)
	}

	return application, nil
}

func (t *teacherService) SetApplicationStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error) {
	if err := requireID(id); err != nil {
		return models.UpdateResult{}, err
	}
	if err := validate(ctx, t.validator, models.StatusUpdate{Status: status}); err != nil {
		return models.UpdateResult{}, err
	}

	result, err := t.teacherRepository.SetApplicationStatus(ctx, id, status)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*teacherService.SetApplicationStatus").Str("id", id).Msg("teacher application status update failed")
		return models.UpdateResult{}, fmt.Errorf("teacher application status update failed: %w", err)
	}

	return result, nil
}

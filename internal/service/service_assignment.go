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

type assignmentService struct {
	assignmentRepository store.AssignmentRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewAssignmentService(assignmentRepository store.AssignmentRepository, validator validators.Validator, logger *logger.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepository: assignmentRepository,
		validator:            validator,
		logger:               logger,
	}
}

func (a *assignmentService) CreateAssignment(ctx context.Context, assignment models.Assignment) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, a.validator, assignment); err != nil {
		log.Err(err).Str("func", "*assignmentService.CreateAssignment").Msg("invalid assignment")
		return models.InsertResult{}, err
	}

	assignment.SubmissionCount = 0

	result, err := a.assignmentRepository.CreateAssignment(ctx, assignment)
	if err != nil {
		log.Err(err).Str("func", "*assignmentService.CreateAssignment").Str("course_id", assignment.CourseID).Msg("assignment creation failed")
		return models.InsertResult{}, fmt.Errorf("assignment creation failed: %w", err)
	}

	return result, nil
}

func (a *assignmentService) FindAssignments(ctx context.Context, courseID string) ([]models.Assignment, error) {
	if err := requireID(courseID); err != nil {
		return nil, err
	}

	assignments, err := a.assignmentRepository.FindAssignmentsByCourse(ctx, courseID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*assignmentService.FindAssignments").Str("course_id", courseID).Msg("assignment search failed")
		return nil, fmt.Errorf("assignment search failed: %w", err)
	}

	return assignments, nil
}

// Submit counts one more submission for the assignment.
func (a *assignmentService) Submit(ctx context.Context, id string) (models.UpdateResult, error) {
	if err := requireID(id); err != nil {
		return models.UpdateResult{}, err
	}

	result, err := a.assignmentRepository.IncrementSubmissions(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*assignmentService.Submit").Str("id", id).Msg("submission increment failed")
		return models.UpdateResult{}, fmt.Errorf("submission increment failed: %w", err)
	}

	return result, nil
}

type submissionService struct {
	submissionRepository store.SubmissionRepository
	validator            validators.Validator

	logger *logger.Logger
}

func NewSubmissionService(submissionRepository store.SubmissionRepository, validator validators.Validator, logger *logger.Logger) SubmissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		validator:            validator,
		logger:               logger,
	}
}

func (s *submissionService) CreateSubmission(ctx context.Context, submission models.Submission) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, s.validator, submission); err != nil {
		log.Err(err).Str("func", "*submissionService.CreateSubmission").Msg("invalid submission")
		return models.InsertResult{}, err
	}

	result, err := s.submissionRepository.CreateSubmission(ctx, submission)
	if err != nil {
		log.Err(err).Str("func", "*submissionService.CreateSubmission").Str("assignment_id", submission.AssignmentID).Msg("submission creation failed")
		return models.InsertResult{}, fmt.Errorf("submission creation failed: %w", err)
	}

	return result, nil
}

func (s *submissionService) FindSubmissions(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	if err := requireID(assignmentID); err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepository.FindSubmissionsByAssignment(ctx, assignmentID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*submissionService.FindSubmissions").Str("assignment_id", assignmentID).Msg("submission search failed")
		return nil, fmt.Errorf("submission search failed: %w", err)
	}

	return submissions, nil
}

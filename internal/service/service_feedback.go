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

type feedbackService struct {
	feedbackRepository store.FeedbackRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewFeedbackService(feedbackRepository store.FeedbackRepository, validator validators.Validator, logger *logger.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepository: feedbackRepository,
		validator:          validator,
		logger:             logger,
	}
}

func (f *feedbackService) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, f.validator, feedback); err != nil {
		log.Err(err).Str("func", "*feedbackService.CreateFeedback").Msg("invalid feedback")
		return models.InsertResult{}, err
	}

	result, err := f.feedbackRepository.CreateFeedback(ctx, feedback)
	if err != nil {
		log.Err(err).Str("func", "*feedbackService.CreateFeedback").Msg("feedback creation failed")
		return models.InsertResult{}, fmt.Errorf("feedback creation failed: %w", err)
	}

	return result, nil
}

func (f *feedbackService) FindFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	feedbacks, err := f.feedbackRepository.FindFeedbacks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*feedbackService.FindFeedbacks").Msg("feedback search failed")
		return nil, fmt.Errorf("feedback search failed: %w", err)
	}

	return feedbacks, nil
}

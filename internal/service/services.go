// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/adapter"
	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/validators"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	CourseService     CourseService
	TeacherService    TeacherService
	AssignmentService AssignmentService
	SubmissionService SubmissionService
	EnrollmentService EnrollmentService
	FeedbackService   FeedbackService
	PaymentService    PaymentService
	DashboardService  DashboardService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, gateway adapter.PaymentGateway, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	v := validators.NewStructValidator()

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, v, logger),
		CourseService:     NewCourseService(storages.CourseRepository, v, logger),
		TeacherService:    NewTeacherService(storages.TeacherRepository, v, logger),
		AssignmentService: NewAssignmentService(storages.AssignmentRepository, v, logger),
		SubmissionService: NewSubmissionService(storages.SubmissionRepository, v, logger),
		EnrollmentService: NewEnrollmentService(storages.EnrollmentRepository, v, logger),
		FeedbackService:   NewFeedbackService(storages.FeedbackRepository, v, logger),
		PaymentService:    NewPaymentService(storages.PaymentRepository, gateway, cfg.Payment, v, logger),
		DashboardService:  NewDashboardService(storages.UserRepository, storages.CourseRepository, storages.EnrollmentRepository, logger),
		AppInfoService:    appInfo,
	}, nil
}

// validate runs v over obj and tags a failure as ErrInvalidDataProvided.
func validate(ctx context.Context, v validators.Validator, obj any, fields ...string) error {
	if err := v.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidDataProvided)
	}
	return nil
}

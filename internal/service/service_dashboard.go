// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/models"
)

type dashboardService struct {
	userRepository       store.UserRepository
	courseRepository     store.CourseRepository
	enrollmentRepository store.EnrollmentRepository

	logger *logger.Logger
}

func NewDashboardService(userRepository store.UserRepository, courseRepository store.CourseRepository, enrollmentRepository store.EnrollmentRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		userRepository:       userRepository,
		courseRepository:     courseRepository,
		enrollmentRepository: enrollmentRepository,
		logger:               logger,
	}
}

// Counts runs three independent counts; they are not a consistent snapshot.
func (d *dashboardService) Counts(ctx context.Context) (models.DashboardCounts, error) {
	log := logger.FromContext(ctx)

	users, err := d.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Counts").Msg("user count failed")
		return models.DashboardCounts{}, fmt.Errorf("user count failed: %w", err)
	}

	courses, err := d.courseRepository.CountCourses(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Counts").Msg("course count failed")
		return models.DashboardCounts{}, fmt.Errorf("course count failed: %w", err)
	}

	enrollments, err := d.enrollmentRepository.CountEnrollments(ctx)
	if err != nil {
		log.Err(err).Str("func", "*dashboardService.Counts").Msg("enrollment count failed")
		return models.DashboardCounts{}, fmt.Errorf("enrollment count failed: %w", err)
	}

	return models.DashboardCounts{Users: users, Courses: courses, Enrollments: enrollments}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/course-plus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies bearer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, email string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	// CreateUser stores user unless one with the same email exists, in which
	// case it returns an error wrapping store.ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.InsertResult, error)
	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetUser(ctx context.Context, email string) (models.User, error)

	// IsAdmin and IsTeacher report false for an unknown email.
	IsAdmin(ctx context.Context, email string) (bool, error)
	IsTeacher(ctx context.Context, email string) (bool, error)

	MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error)
	MakeTeacher(ctx context.Context, email string) (models.UpdateResult, error)
}

type CourseService interface {
	CreateCourse(ctx context.Context, course models.Course) (models.InsertResult, error)
	FindCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (models.Course, error)
	// UpdateCourse and DeleteCourse are limited to courses owned by owner;
	// an empty owner skips the check. A course the owner does not hold is
	// reported as store.ErrNotFound.
	UpdateCourse(ctx context.Context, id, owner string, update models.CourseUpdate) (models.UpdateResult, error)
	SetCourseStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error)
	DeleteCourse(ctx context.Context, id, owner string) (models.DeleteResult, error)

	PopularCourses(ctx context.Context) ([]models.Course, error)
	IncrementEnrollment(ctx context.Context, id string) (models.UpdateResult, error)
	EnrollmentCount(ctx context.Context, id string) (models.EnrollmentCount, error)
}

type TeacherService interface {
	Apply(ctx context.Context, application models.TeacherApplication) (models.InsertResult, error)
	FindApplications(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherApplication, error)
	GetApplication(ctx context.Context, email string) (models.TeacherApplication, error)
	SetApplicationStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error)
}

type AssignmentService interface {
	CreateAssignment(ctx context.Context, assignment models.Assignment) (models.InsertResult, error)
	FindAssignments(ctx context.Context, courseID string) ([]models.Assignment, error)
	Submit(ctx context.Context, id string) (models.UpdateResult, error)
}

type SubmissionService interface {
	CreateSubmission(ctx context.Context, submission models.Submission) (models.InsertResult, error)
	FindSubmissions(ctx context.Context, assignmentID string) ([]models.Submission, error)
}

type EnrollmentService interface {
	Enroll(ctx context.Context, enrollment models.Enrollment) (models.InsertResult, error)
	FindEnrollments(ctx context.Context, email string) ([]models.Enrollment, error)
}

type FeedbackService interface {
	CreateFeedback(ctx context.Context, feedback models.Feedback) (models.InsertResult, error)
	FindFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntent, error)
	RecordPayment(ctx context.Context, payment models.Payment) (models.InsertResult, error)
	FindPayments(ctx context.Context, email string) ([]models.Payment, error)
}

// DashboardService reports approximate collection sizes.
type DashboardService interface {
	Counts(ctx context.Context) (models.DashboardCounts, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

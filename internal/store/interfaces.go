// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/course-plus/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Email is the identity key.
type UserRepository interface {
	// CreateUserIfAbsent inserts user unless a user with the same email
	// exists. The check and the insert are a single store operation.
	// Returns [ErrUserAlreadyExists] when nothing was inserted.
	CreateUserIfAbsent(ctx context.Context, user models.User) (models.InsertResult, error)
	FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	// FindUserByEmail returns [ErrNotFound] when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	SetRoleByID(ctx context.Context, id string, role models.Role) (models.UpdateResult, error)
	SetRoleByEmail(ctx context.Context, email string, role models.Role) (models.UpdateResult, error)
	CountUsers(ctx context.Context) (int64, error)
}

// CourseRepository persists courses and their enrollment counter.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course models.Course) (models.InsertResult, error)
	FindCourses(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindCourseByID(ctx context.Context, id string) (models.Course, error)
	// UpdateCourse and DeleteCourse only touch the course when its email
	// equals owner. An empty owner matches any course.
	UpdateCourse(ctx context.Context, id, owner string, update models.CourseUpdate) (models.UpdateResult, error)
	SetCourseStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error)
	DeleteCourse(ctx context.Context, id, owner string) (models.DeleteResult, error)

	// FindPopularCourses returns at most limit approved courses ordered by
	// totalEnrollment descending, ties broken by id ascending.
	FindPopularCourses(ctx context.Context, limit int) ([]models.Course, error)
	// IncrementEnrollment adds one to totalEnrollment in a single atomic
	// update.
	IncrementEnrollment(ctx context.Context, id string) (models.UpdateResult, error)
	// SumEnrollment sums totalEnrollment over the courses matching id.
	// Zero when none match.
	SumEnrollment(ctx context.Context, id string) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
}

// TeacherRepository persists teacher applications.
type TeacherRepository interface {
	CreateApplication(ctx context.Context, application models.TeacherApplication) (models.InsertResult, error)
	FindApplications(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherApplication, error)
	FindApplicationByEmail(ctx context.Context, email string) (models.TeacherApplication, error)
	SetApplicationStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error)
}

// AssignmentRepository persists assignments and their submission counter.
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment models.Assignment) (models.InsertResult, error)
	FindAssignmentsByCourse(ctx context.Context, courseID string) ([]models.Assignment, error)
	IncrementSubmissions(ctx context.Context, id string) (models.UpdateResult, error)
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission models.Submission) (models.InsertResult, error)
	FindSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]models.Submission, error)
}

type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.InsertResult, error)
	FindEnrollments(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error)
	CountEnrollments(ctx context.Context) (int64, error)
}

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback models.Feedback) (models.InsertResult, error)
	FindFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment models.Payment) (models.InsertResult, error)
	FindPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// HealthChecker reports store reachability and releases its connection.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

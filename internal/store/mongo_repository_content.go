// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoTeacherRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoTeacherRepository(db *MongoDB, logger *logger.Logger) TeacherRepository {
	logger.Debug().Msg("creating mongo teacher repository")
	return &mongoTeacherRepository{MongoDB: db, logger: logger}
}

func (r *mongoTeacherRepository) CreateApplication(ctx context.Context, application models.TeacherApplication) (models.InsertResult, error) {
	return r.insertOne(ctx, collectionTeachers, application)
}

func (r *mongoTeacherRepository) FindApplications(ctx context.Context, filter models.TeacherFilter) ([]models.TeacherApplication, error) {
	return findAll[models.TeacherApplication](ctx, r.MongoDB, collectionTeachers, teacherFilter(filter), sortByID())
}

func (r *mongoTeacherRepository) FindApplicationByEmail(ctx context.Context, email string) (models.TeacherApplication, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})
	return findOne[models.TeacherApplication](ctx, r.MongoDB, collectionTeachers, emailFilter(email), opts)
}

func (r *mongoTeacherRepository) SetApplicationStatus(ctx context.Context, id string, status models.Status) (models.UpdateResult, error) {
	return r.updateByID(ctx, collectionTeachers, id, setField("status", string(status)))
}

type mongoAssignmentRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoAssignmentRepository(db *MongoDB, logger *logger.Logger) AssignmentRepository {
	logger.Debug().Msg("creating mongo assignment repository")
	return &mongoAssignmentRepository{MongoDB: db, logger: logger}
}

func (r *mongoAssignmentRepository) CreateAssignment(ctx context.Context, assignment models.Assignment) (models.InsertResult, error) {
	return r.insertOne(ctx, collectionAssignments, assignment)
}

func (r *mongoAssignmentRepository) FindAssignmentsByCourse(ctx context.Context, courseID string) ([]models.Assignment, error) {
	return findAll[models.Assignment](ctx, r.MongoDB, collectionAssignments, bson.M{"courseId": courseID}, sortByID())
}

func (r *mongoAssignmentRepository) IncrementSubmissions(ctx context.Context, id string) (models.UpdateResult, error) {
	return r.updateByID(ctx, collectionAssignments, id, incrementField("submissionCount"))
}

type mongoSubmissionRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoSubmissionRepository(db *MongoDB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating mongo submission repository")
	return &mongoSubmissionRepository{MongoDB: db, logger: logger}
}

func (r *mongoSubmissionRepository) CreateSubmission(ctx context.Context, submission models.Submission) (models.InsertResult, error) {
	return r.insertOne(ctx, collectionSubmissions, submission)
}

func (r *mongoSubmissionRepository) FindSubmissionsByAssignment(ctx context.Context, assignmentID string) ([]models.Submission, error) {
	return findAll[models.Submission](ctx, r.MongoDB, collectionSubmissions, bson.M{"assignmentId": assignmentID}, sortByID())
}

type mongoEnrollmentRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoEnrollmentRepository(db *MongoDB, logger *logger.Logger) EnrollmentRepository {
	logger.Debug().Msg("creating mongo enrollment repository")
	return &mongoEnrollmentRepository{MongoDB: db, logger: logger}
}

func (r *mongoEnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (models.InsertResult, error) {
	return r.insertOne(ctx, collectionEnrollments, enrollment)
}

func (r *mongoEnrollmentRepository) FindEnrollments(ctx context.Context, filter models.EnrollmentFilter) ([]models.Enrollment, error) {
	return findAll[models.Enrollment](ctx, r.MongoDB, collectionEnrollments, enrollmentFilter(filter), sortByID())
}

func (r *mongoEnrollmentRepository) CountEnrollments(ctx context.Context) (int64, error) {
	return r.estimatedCount(ctx, collectionEnrollments)
}

type mongoFeedbackRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoFeedbackRepository(db *MongoDB, logger *logger.Logger) FeedbackRepository {
	logger.Debug().Msg("creating mongo feedback repository")
	return &mongoFeedbackRepository{MongoDB: db, logger: logger}
}

func (r *mongoFeedbackRepository) CreateFeedback(ctx context.Context, feedback models.Feedback) (models.InsertResult, error) {
	return r.insertOne(ctx, collectionFeedbacks, feedback)
}

func (r *mongoFeedbackRepository) FindFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	return findAll[models.Feedback](ctx, r.MongoDB, collectionFeedbacks, bson.M{}, sortByID())
}

type mongoPaymentRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoPaymentRepository(db *MongoDB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating mongo payment repository")
	return &mongoPaymentRepository{MongoDB: db, logger: logger}
}

func (r *mongoPaymentRepository) CreatePayment(ctx context.Context, payment models.Payment) (models.InsertResult, error) {
	return r.insertOne(ctx, collectionPayments, payment)
}

func (r *mongoPaymentRepository) FindPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return findAll[models.Payment](ctx, r.MongoDB, collectionPayments, emailFilter(email), sortByID())
}

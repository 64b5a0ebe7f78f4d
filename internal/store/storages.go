// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/logger"
)

// Storages bundles every repository over one shared connection.
type Storages struct {
	UserRepository       UserRepository
	CourseRepository     CourseRepository
	TeacherRepository    TeacherRepository
	AssignmentRepository AssignmentRepository
	SubmissionRepository SubmissionRepository
	EnrollmentRepository EnrollmentRepository
	FeedbackRepository   FeedbackRepository
	PaymentRepository    PaymentRepository

	// HealthChecker pings and closes the shared connection.
	HealthChecker HealthChecker
}

// NewStorages opens the backend selected by the DSN scheme and prepares its
// schema: goose migrations for SQL, indexes for MongoDB.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	if isMongoDSN(cfg.DSN) {
		db, err := NewConnectMongo(ctx, cfg.DSN, cfg.Name, log)
		if err != nil {
			return nil, err
		}

		if err := db.EnsureIndexes(ctx); err != nil {
			_ = db.Close(context.WithoutCancel(ctx))
			return nil, fmt.Errorf("error preparing mongo indexes: %w", err)
		}

		return NewMongoStorages(db, log), nil
	}

	db, err := NewConnectSQL(ctx, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
		db.DB.Close()
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		CourseRepository:     NewCourseRepository(db, log),
		TeacherRepository:    NewTeacherRepository(db, log),
		AssignmentRepository: NewAssignmentRepository(db, log),
		SubmissionRepository: NewSubmissionRepository(db, log),
		EnrollmentRepository: NewEnrollmentRepository(db, log),
		FeedbackRepository:   NewFeedbackRepository(db, log),
		PaymentRepository:    NewPaymentRepository(db, log),
		HealthChecker:        db,
	}
}

func NewMongoStorages(db *MongoDB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewMongoUserRepository(db, log),
		CourseRepository:     NewMongoCourseRepository(db, log),
		TeacherRepository:    NewMongoTeacherRepository(db, log),
		AssignmentRepository: NewMongoAssignmentRepository(db, log),
		SubmissionRepository: NewMongoSubmissionRepository(db, log),
		EnrollmentRepository: NewMongoEnrollmentRepository(db, log),
		FeedbackRepository:   NewMongoFeedbackRepository(db, log),
		PaymentRepository:    NewMongoPaymentRepository(db, log),
		HealthChecker:        db,
	}
}

func isMongoDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "mongodb://") || strings.HasPrefix(dsn, "mongodb+srv://")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/utils"
	"github.com/MKhiriev/course-plus/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names match the SQL table names.
const (
	collectionUsers       = "users"
	collectionCourses     = "courses"
	collectionTeachers    = "teachers"
	collectionAssignments = "assignments"
	collectionSubmissions = "submissions"
	collectionEnrollments = "enrollments"
	collectionFeedbacks   = "feedbacks"
	collectionPayments    = "payments"
)

// MongoDB is a MongoDB connection shared by all Mongo repositories.
type MongoDB struct {
	client             *mongo.Client
	db                 *mongo.Database
	errorClassificator ErrorClassificator
	ids                utils.IDGenerator
	now                func() time.Time
	logger             *logger.Logger
}

// NewConnectMongo connects to the deployment described by dsn and selects
// the database name.
func NewConnectMongo(ctx context.Context, dsn, name string, log *logger.Logger) (*MongoDB, error) {
	opts := options.Client().
		ApplyURI(dsn).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", name).Msg("connected to database successfully")

	return newMongoDB(client, name, log), nil
}

func newMongoDB(client *mongo.Client, name string, log *logger.Logger) *MongoDB {
	return &MongoDB{
		client:             client,
		db:                 client.Database(name),
		errorClassificator: NewMongoErrorClassifier(),
		ids:                utils.NewObjectIDGenerator(),
		now:                time.Now,
		logger:             log,
	}
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index backs [UserRepository.CreateUserIfAbsent].
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionCourses: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "totalEnrollment", Value: -1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		collectionEnrollments: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		collectionAssignments: {
			{Keys: bson.D{{Key: "courseId", Value: 1}}},
		},
	}

	for name, idx := range indexes {
		if _, err := m.db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			m.logger.Err(err).Str("func", "*MongoDB.EnsureIndexes").Str("collection", name).Msg("error creating indexes")
			return m.wrapError(ErrExecutingStatement, err)
		}
	}

	return nil
}

func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return m.wrapError(ErrExecutingQuery, err)
	}
	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *MongoDB) wrapError(base, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case m.errorClassificator.Classify(err) == Retryable:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", base, err)
	}
}

func (m *MongoDB) insertOne(ctx context.Context, coll string, v any) (models.InsertResult, error) {
	id := m.ids.Generate()

	doc, err := newDocument(v, id, m.now().UTC())
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err := m.collection(coll).InsertOne(ctx, doc); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*MongoDB.insertOne").Str("collection", coll).Msg("error inserting document")
		return models.InsertResult{}, m.wrapError(ErrExecutingStatement, err)
	}

	return models.NewInsertResult(id), nil
}

func (m *MongoDB) updateOne(ctx context.Context, coll string, filter, update bson.M) (models.UpdateResult, error) {
	res, err := m.collection(coll).UpdateOne(ctx, filter, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*MongoDB.updateOne").Str("collection", coll).Msg("error updating document")
		return models.UpdateResult{}, m.wrapError(ErrExecutingStatement, err)
	}

	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func (m *MongoDB) updateByID(ctx context.Context, coll, id string, update bson.M) (models.UpdateResult, error) {
	filter, err := idFilter(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return m.updateOne(ctx, coll, filter, update)
}

// estimatedCount uses collection metadata; it does not scan documents.
func (m *MongoDB) estimatedCount(ctx context.Context, coll string) (int64, error) {
	n, err := m.collection(coll).EstimatedDocumentCount(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*MongoDB.estimatedCount").Str("collection", coll).Msg("error counting documents")
		return 0, m.wrapError(ErrExecutingQuery, err)
	}
	return n, nil
}

func findAll[T any](ctx context.Context, m *MongoDB, coll string, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := m.collection(coll).Find(ctx, filter, opts...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "store.findAll").Str("collection", coll).Msg("error executing find")
		return nil, m.wrapError(ErrExecutingQuery, err)
	}

	results := make([]T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "store.findAll").Str("collection", coll).Msg("error decoding documents")
		return nil, m.wrapError(ErrScanningRows, err)
	}

	return results, nil
}

func findOne[T any](ctx context.Context, m *MongoDB, coll string, filter bson.M, opts ...*options.FindOneOptions) (T, error) {
	var result T

	err := m.collection(coll).FindOne(ctx, filter, opts...).Decode(&result)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			logger.FromContext(ctx).Err(err).Str("func", "store.findOne").Str("collection", coll).Msg("error finding document")
		}
		return result, m.wrapError(ErrScanningRow, err)
	}

	return result, nil
}

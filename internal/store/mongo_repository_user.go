// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoUserRepository is the MongoDB implementation of [UserRepository].
// Creation is a single upsert guarded by $setOnInsert on the unique email
// index.
type mongoUserRepository struct {
	*MongoDB
	logger *logger.Logger
}

func NewMongoUserRepository(db *MongoDB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{
		MongoDB: db,
		logger:  logger,
	}
}

func (r *mongoUserRepository) CreateUserIfAbsent(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	id := r.ids.Generate()
	filter, update, err := userInsertIfAbsent(user, id, r.now().UTC())
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	res, err := r.collection(collectionUsers).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.CreateUserIfAbsent").Str("email", user.Email).Msg("error upserting user")
		wrapped := r.wrapError(ErrExecutingStatement, err)
		// two concurrent upserts can both miss; the unique index rejects the loser
		if errors.Is(wrapped, ErrAlreadyExists) {
			return models.InsertResult{}, ErrUserAlreadyExists
		}
		return models.InsertResult{}, wrapped
	}

	if res.UpsertedCount == 0 {
		return models.InsertResult{}, ErrUserAlreadyExists
	}

	return models.NewInsertResult(id), nil
}

func (r *mongoUserRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return findAll[models.User](ctx, r.MongoDB, collectionUsers, userFilter(filter), sortByID())
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return findOne[models.User](ctx, r.MongoDB, collectionUsers, emailFilter(email))
}

func (r *mongoUserRepository) SetRoleByID(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	return r.updateByID(ctx, collectionUsers, id, setField("role", string(role)))
}

func (r *mongoUserRepository) SetRoleByEmail(ctx context.Context, email string, role models.Role) (models.UpdateResult, error) {
	if email == "" {
		return models.UpdateResult{}, ErrInvalidID
	}
	return r.updateOne(ctx, collectionUsers, emailFilter(email), setField("role", string(role)))
}

func (r *mongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.estimatedCount(ctx, collectionUsers)
}

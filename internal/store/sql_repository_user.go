// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

var userColumns = []string{"id", "email", "name", "image", "role", "created_at"}

// userRepository is the SQL-backed implementation of [UserRepository].
//
// Email uniqueness relies on the users_email_key unique index: inserts use
// ON CONFLICT (email) DO NOTHING, so a duplicate is detected from the affected
// row count without a prior lookup.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUserIfAbsent(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	id := r.newID()
	query := r.builder.Insert("users").
		Columns(userColumns...).
		Values(id, user.Email, user.Name, user.Image, string(user.Role), r.timestamp()).
		Suffix("ON CONFLICT (email) DO NOTHING")

	affected, err := r.exec(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUserIfAbsent").Str("email", user.Email).Msg("error inserting user")
		return models.InsertResult{}, err
	}

	if affected == 0 {
		log.Debug().Str("func", "*userRepository.CreateUserIfAbsent").Str("email", user.Email).Msg("user already exists")
		return models.InsertResult{}, ErrUserAlreadyExists
	}

	return models.NewInsertResult(id), nil
}

func (r *userRepository) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	query := r.builder.Select(userColumns...).From("users").OrderBy("id ASC")

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(sq.Or{
			sq.Expr("LOWER(name) LIKE ?", pattern),
			sq.Expr("LOWER(email) LIKE ?", pattern),
		})
	}
	if filter.Role != models.RoleNone {
		query = query.Where(sq.Eq{"role": string(filter.Role)})
	}

	return selectAll(ctx, r.DB, query, scanUser)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := r.builder.Select(userColumns...).From("users").Where(sq.Eq{"email": email})

	user, err := selectOne(ctx, r.DB, query, scanUser)
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
	}

	return user, err
}

func (r *userRepository) SetRoleByID(ctx context.Context, id string, role models.Role) (models.UpdateResult, error) {
	query := r.builder.Update("users").Set("role", string(role)).Where(sq.Eq{"id": id})
	return r.update(ctx, id, query)
}

func (r *userRepository) SetRoleByEmail(ctx context.Context, email string, role models.Role) (models.UpdateResult, error) {
	query := r.builder.Update("users").Set("role", string(role)).Where(sq.Eq{"email": email})
	return r.update(ctx, email, query)
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users")
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var role string
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Image, &role, &user.CreatedAt)
	user.Role = models.Role(role)
	return user, err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/validators"
	"github.com/MKhiriev/course-plus/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser defaults an empty role to student. Uniqueness is left to the
// repository's atomic conditional insert.
func (u *userService) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := validate(ctx, u.validator, user); err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("email", user.Email).Msg("invalid user data provided")
		return models.InsertResult{}, err
	}

	if user.Role == models.RoleNone {
		user.Role = models.RoleStudent
	}

	result, err := u.userRepository.CreateUserIfAbsent(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Str("func", "*userService.CreateUser").Str("email", user.Email).Msg("user already exists")
		} else {
			log.Err(err).Str("func", "*userService.CreateUser").Str("email", user.Email).Msg("user creation ended with error")
		}
		return models.InsertResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return result, nil
}

func (u *userService) FindUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	users, err := u.userRepository.FindUsers(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.FindUsers").Msg("user search failed")
		return nil, fmt.Errorf("user search failed: %w", err)
	}

	return users, nil
}

func (u *userService) GetUser(ctx context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, fmt.Errorf("%w: empty email", ErrInvalidDataProvided)
	}

	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

func (u *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return u.hasRole(ctx, email, models.RoleAdmin)
}

func (u *userService) IsTeacher(ctx context.Context, email string) (bool, error) {
	return u.hasRole(ctx, email, models.RoleTeacher)
}

func (u *userService) hasRole(ctx context.Context, email string, role models.Role) (bool, error) {
	user, err := u.GetUser(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.Role == role, nil
}

func (u *userService) MakeAdmin(ctx context.Context, id string) (models.UpdateResult, error) {
	if err := requireID(id); err != nil {
		return models.UpdateResult{}, err
	}

	result, err := u.userRepository.SetRoleByID(ctx, id, models.RoleAdmin)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.MakeAdmin").Str("id", id).Msg("role update failed")
		return models.UpdateResult{}, fmt.Errorf("role update failed: %w", err)
	}

	return result, nil
}

func (u *userService) MakeTeacher(ctx context.Context, email string) (models.UpdateResult, error) {
	if email == "" {
		return models.UpdateResult{}, fmt.Errorf("%w: empty email", ErrInvalidDataProvided)
	}

	result, err := u.userRepository.SetRoleByEmail(ctx, email, models.RoleTeacher)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.MakeTeacher").Str("email", email).Msg("role update failed")
		return models.UpdateResult{}, fmt.Errorf("role update failed: %w", err)
	}

	return result, nil
}

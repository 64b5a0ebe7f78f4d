// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the only authorization attribute of a [User].
// It is stored as free text; allowed values are checked at the HTTP boundary.
type Role string

const (
	RoleNone    Role = ""
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// User is a marketplace account. Email is the identity key and is unique
// across the users collection.
type User struct {
	// ID is the store-assigned identifier (ObjectID hex or UUIDv7).
	ID string `json:"_id" bson:"_id"`

	// Email is the identity key. Tokens carry it as their subject.
	Email string `json:"email" bson:"email" validate:"required,email"`

	// Name is the display name shown in the front end.
	Name string `json:"name" bson:"name"`

	// Image is the avatar URL.
	Image string `json:"image" bson:"image"`

	// Role decides which guarded routes the user can reach.
	Role Role `json:"role" bson:"role" validate:"omitempty,oneof=student teacher admin"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// IsAdmin reports whether the user holds exactly the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsTeacher reports whether the user holds exactly the teacher role.
func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// TableName returns the name of the database table (or collection)
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserFilter narrows a users lookup. Empty fields are ignored.
type UserFilter struct {
	// Search matches name or email case-insensitively as a substring.
	Search string
	Role   Role
}

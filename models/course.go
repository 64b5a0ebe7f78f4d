// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Status is the review state shared by courses and teacher applications.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Course is a paid course owned by a teacher (identified by email).
type Course struct {
	ID          string  `json:"_id" bson:"_id"`
	Title       string  `json:"title" bson:"title" validate:"required"`
	Name        string  `json:"name" bson:"name"`
	Email       string  `json:"email" bson:"email" validate:"required,email"`
	Image       string  `json:"image" bson:"image"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Description string  `json:"description" bson:"description"`
	Status      Status  `json:"status" bson:"status" validate:"omitempty,oneof=pending approved rejected"`

	// TotalEnrollment is only ever incremented, never recomputed from
	// enrollment records.
	TotalEnrollment int64 `json:"totalEnrollment" bson:"totalEnrollment"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (c Course) TableName() string {
	return "courses"
}

// CourseFilter narrows a courses lookup. Empty fields are ignored.
type CourseFilter struct {
	Status Status
	Email  string
}

// CourseUpdate is a partial field-set update of a course.
// Only non-nil fields are written.
type CourseUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description *string  `json:"description,omitempty"`
}

// IsEmpty reports whether no field would be updated.
func (u CourseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Image == nil && u.Price == nil && u.Description == nil
}

// StatusUpdate is the body of the status-changing admin routes.
type StatusUpdate struct {
	Status Status `json:"status" validate:"required,oneof=pending approved rejected"`
}

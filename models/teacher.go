// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TeacherApplication is a request from a user to teach on the platform.
// Approving it does not change the user's role; that is a separate admin call.
type TeacherApplication struct {
	ID         string    `json:"_id" bson:"_id"`
	Email      string    `json:"email" bson:"email" validate:"required,email"`
	Name       string    `json:"name" bson:"name"`
	Image      string    `json:"image" bson:"image"`
	Title      string    `json:"title" bson:"title"`
	Category   string    `json:"category" bson:"category"`
	Experience string    `json:"experience" bson:"experience"`
	Status     Status    `json:"status" bson:"status" validate:"omitempty,oneof=pending approved rejected"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

func (t TeacherApplication) TableName() string {
	return "teachers"
}

// TeacherFilter narrows a teacher applications lookup.
type TeacherFilter struct {
	Email  string
	Status Status
}

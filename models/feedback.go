// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Feedback is a course review shown on the landing page.
type Feedback struct {
	ID          string    `json:"_id" bson:"_id"`
	CourseID    string    `json:"courseId" bson:"courseId"`
	Title       string    `json:"title" bson:"title"`
	Email       string    `json:"email" bson:"email"`
	Name        string    `json:"name" bson:"name"`
	Image       string    `json:"image" bson:"image"`
	Rating      float64   `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

func (f Feedback) TableName() string {
	return "feedbacks"
}

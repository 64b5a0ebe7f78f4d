// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Assignment belongs to a course through CourseID.
type Assignment struct {
	ID          string `json:"_id" bson:"_id"`
	CourseID    string `json:"courseId" bson:"courseId" validate:"required"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description"`
	Deadline    string `json:"deadline" bson:"deadline"`

	// SubmissionCount is incremented once per submission, atomically.
	SubmissionCount int64 `json:"submissionCount" bson:"submissionCount"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (a Assignment) TableName() string {
	return "assignments"
}

// Submission is a student's answer to an assignment.
type Submission struct {
	ID           string    `json:"_id" bson:"_id"`
	AssignmentID string    `json:"assignmentId" bson:"assignmentId" validate:"required"`
	CourseID     string    `json:"courseId" bson:"courseId"`
	Email        string    `json:"email" bson:"email"`
	Link         string    `json:"link" bson:"link"`
	Note         string    `json:"note" bson:"note"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

func (s Submission) TableName() string {
	return "submissions"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InsertResult mirrors the document store's insert acknowledgement and is
// relayed to the caller unchanged.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

// NewInsertResult returns an acknowledged result for id.
func NewInsertResult(id string) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}

// UpdateResult mirrors the document store's update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the document store's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// UserExistsResponse is returned instead of an insert result when a user
// with the same email already exists.
type UserExistsResponse struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

// DashboardCounts holds three independent, approximate collection sizes.
type DashboardCounts struct {
	Users       int64 `json:"users"`
	Courses     int64 `json:"courses"`
	Enrollments int64 `json:"enrollments"`
}

// EnrollmentCount is the response of the course enrollment count route.
type EnrollmentCount struct {
	Count int64 `json:"count"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/MKhiriev/course-plus/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDFilter(t *testing.T) {
	hex := "65f1a2b3c4d5e6f708192a3b"
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)

	f, err := idFilter(hex)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": bson.M{"$in": bson.A{oid, hex}}}, f)

	f, err = idFilter("not-an-object-id")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": "not-an-object-id"}, f)

	_, err = idFilter("")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestNewDocument(t *testing.T) {
	hex := "65f1a2b3c4d5e6f708192a3b"
	course := models.Course{ID: "ignored", Title: "Go", Status: models.StatusPending, TotalEnrollment: 2}

	doc, err := newDocument(course, hex, fixedNow)
	require.NoError(t, err)

	oid, _ := primitive.ObjectIDFromHex(hex)
	assert.Equal(t, oid, doc["_id"])
	assert.Equal(t, "Go", doc["title"])
	assert.Equal(t, "pending", doc["status"])
	assert.EqualValues(t, 2, doc["totalEnrollment"])
	assert.Equal(t, fixedNow, doc["createdAt"])

	doc, err = newDocument(course, "id-001", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "id-001", doc["_id"])
}

func TestUserInsertIfAbsent(t *testing.T) {
	filter, update, err := userInsertIfAbsent(models.User{Email: "a@b.com", Role: models.RoleStudent}, "id-001", fixedNow)
	require.NoError(t, err)

	assert.Equal(t, bson.M{"email": "a@b.com"}, filter)
	require.Len(t, update, 1)
	doc, ok := update["$setOnInsert"].(bson.M)
	require.True(t, ok, "only $setOnInsert may be used")
	assert.Equal(t, "a@b.com", doc["email"])
	assert.Equal(t, "student", doc["role"])
}

func TestUserFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, userFilter(models.UserFilter{}))

	f := userFilter(models.UserFilter{Search: "a.b", Role: models.RoleAdmin})
	assert.Equal(t, "admin", f["role"])
	or, ok := f["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)
	assert.Equal(t, bson.M{"name": primitive.Regex{Pattern: `a\.b`, Options: "i"}}, or[0])
}

func TestEntityFilters(t *testing.T) {
	assert.Equal(t, bson.M{"status": "approved", "email": "t@b.com"},
		courseFilter(models.CourseFilter{Status: models.StatusApproved, Email: "t@b.com"}))
	assert.Equal(t, bson.M{"email": "t@b.com"}, teacherFilter(models.TeacherFilter{Email: "t@b.com"}))
	assert.Equal(t, bson.M{"enrollId": "c1"}, enrollmentFilter(models.EnrollmentFilter{EnrollID: "c1"}))
}

func TestCourseUpdateDoc(t *testing.T) {
	assert.Nil(t, courseUpdateDoc(models.CourseUpdate{}))

	price := 12.5
	title := "New"
	assert.Equal(t,
		bson.M{"$set": bson.M{"price": 12.5, "title": "New"}},
		courseUpdateDoc(models.CourseUpdate{Price: &price, Title: &title}))
}

func TestIncrementField(t *testing.T) {
	assert.Equal(t, bson.M{"$inc": bson.M{"totalEnrollment": 1}}, incrementField("totalEnrollment"))
	assert.Equal(t, bson.M{"$set": bson.M{"role": "admin"}}, setField("role", "admin"))
}

func TestPopularCoursesQuery(t *testing.T) {
	filter, opts := popularCoursesQuery(4)

	assert.Equal(t, bson.M{"status": "approved"}, filter)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 4, *opts.Limit)
	assert.Equal(t, bson.D{{Key: "totalEnrollment", Value: -1}, {Key: "_id", Value: 1}}, opts.Sort)
}

func TestSumEnrollmentPipeline(t *testing.T) {
	pipeline, err := sumEnrollmentPipeline("id-1")
	require.NoError(t, err)
	require.Len(t, pipeline, 2)
	assert.Equal(t, "$match", pipeline[0][0].Key)
	assert.Equal(t, bson.M{"_id": "id-1"}, pipeline[0][0].Value)
	assert.Equal(t, "$group", pipeline[1][0].Key)

	_, err = sumEnrollmentPipeline("")
	assert.ErrorIs(t, err, ErrInvalidID)
}

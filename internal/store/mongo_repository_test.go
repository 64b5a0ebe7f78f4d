// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/models"
)

const courseHexID = "65f1c0d2a4b3c2d1e0f01234"

type fixedID string

func (f fixedID) Generate() string { return string(f) }

// newMockMongo wires a MongoDB to the mtest mock deployment.
func newMockMongo(mt *mtest.T) *MongoDB {
	db := newMongoDB(mt.Client, "courseDB", logger.Nop())
	db.ids = fixedID(courseHexID)
	db.now = func() time.Time { return fixedNow }
	return db
}

// sentFilter pops the oldest recorded command and returns its first write filter.
func sentFilter(mt *mtest.T, batch string) bson.Raw {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	return evt.Command.Lookup(batch, "0", "q").Document()
}

func TestMongoUserRepository_CreateUserIfAbsent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	user := models.User{Email: "new@course.plus", Name: "New", Role: models.RoleStudent}

	mt.Run("inserted", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		oid, _ := primitive.ObjectIDFromHex(courseHexID)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: oid}}}},
		))

		res, err := repo.CreateUserIfAbsent(testContext(), user)
		require.NoError(mt, err)
		require.NotNil(mt, res.InsertedID)
		assert.Equal(mt, courseHexID, *res.InsertedID)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.True(mt, evt.Command.Lookup("updates", "0", "upsert").Boolean())
		assert.Equal(mt, "new@course.plus", evt.Command.Lookup("updates", "0", "q", "email").StringValue())
		onInsert := evt.Command.Lookup("updates", "0", "u", "$setOnInsert").Document()
		assert.Equal(mt, "student", onInsert.Lookup("role").StringValue())
		assert.Equal(mt, oid, onInsert.Lookup("_id").ObjectID())
	})

	mt.Run("email already present", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
		))

		_, err := repo.CreateUserIfAbsent(testContext(), user)
		assert.ErrorIs(mt, err, ErrUserAlreadyExists)
	})

	mt.Run("lost race on unique index", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: courseDB.users index: email_1",
		}))

		_, err := repo.CreateUserIfAbsent(testContext(), user)
		assert.ErrorIs(mt, err, ErrUserAlreadyExists)
	})
}

func TestMongoUserRepository_FindUserByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("object id decoded as hex", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		oid, _ := primitive.ObjectIDFromHex(courseHexID)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "courseDB.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "t@course.plus"},
			{Key: "name", Value: "Teacher"},
			{Key: "role", Value: "teacher"},
		}))

		user, err := repo.FindUserByEmail(testContext(), "t@course.plus")
		require.NoError(mt, err)
		assert.Equal(mt, courseHexID, user.ID)
		assert.True(mt, user.IsTeacher())
	})

	mt.Run("string id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "courseDB.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "0190b6a2-7f2c-7c4e-9a51-3b2f1f0c9d11"},
			{Key: "email", Value: "s@course.plus"},
		}))

		user, err := repo.FindUserByEmail(testContext(), "s@course.plus")
		require.NoError(mt, err)
		assert.Equal(mt, "0190b6a2-7f2c-7c4e-9a51-3b2f1f0c9d11", user.ID)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "courseDB.users", mtest.FirstBatch))

		_, err := repo.FindUserByEmail(testContext(), "ghost@course.plus")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoUserRepository_SetRoleByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("counts from server reply", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.SetRoleByID(testContext(), courseHexID, models.RoleAdmin)
		require.NoError(mt, err)
		assert.Equal(mt, models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, res)

		filter := sentFilter(mt, "updates")
		ids, err := filter.Lookup("_id", "$in").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, ids, 2)
		assert.Equal(mt, courseHexID, ids[0].ObjectID().Hex())
		assert.Equal(mt, courseHexID, ids[1].StringValue())
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewMongoUserRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.SetRoleByID(testContext(), "missing", models.RoleAdmin)
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Zero(mt, res.MatchedCount)
	})
}

func TestMongoCourseRepository_OwnerScopedWrites(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	title := "Renamed"

	mt.Run("update by owner", func(mt *mtest.T) {
		repo := NewMongoCourseRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.UpdateCourse(testContext(), courseHexID, "t@course.plus", models.CourseUpdate{Title: &title})
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.ModifiedCount)

		filter := sentFilter(mt, "updates")
		assert.Equal(mt, "t@course.plus", filter.Lookup("email").StringValue())
	})

	mt.Run("update by someone else matches nothing", func(mt *mtest.T) {
		repo := NewMongoCourseRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.UpdateCourse(testContext(), courseHexID, "other@course.plus", models.CourseUpdate{Title: &title})
		require.NoError(mt, err)
		assert.Zero(mt, res.MatchedCount)
	})

	mt.Run("unscoped delete", func(mt *mtest.T) {
		repo := NewMongoCourseRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.DeleteCourse(testContext(), courseHexID, "")
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.DeletedCount)

		filter := sentFilter(mt, "deletes")
		_, lookupErr := filter.LookupErr("email")
		assert.Error(mt, lookupErr)
	})

	mt.Run("scoped delete", func(mt *mtest.T) {
		repo := NewMongoCourseRepository(newMockMongo(mt), logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		res, err := repo.DeleteCourse(testContext(), courseHexID, "other@course.plus")
		require.NoError(mt, err)
		assert.Zero(mt, res.DeletedCount)

		filter := sentFilter(mt, "deletes")
		assert.Equal(mt, "other@course.plus", filter.Lookup("email").StringValue())
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"time"

	"github.com/MKhiriev/course-plus/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// idFilter matches a document by id. A 24-hex id matches both an ObjectID
// _id and a string _id holding the same hex.
func idFilter(id string) (bson.M, error) {
	if id == "" {
		return nil, ErrInvalidID
	}

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}, nil
	}

	return bson.M{"_id": id}, nil
}

// ownedCourseFilter narrows idFilter to courses whose email is owner.
// An empty owner leaves the filter unscoped.
func ownedCourseFilter(id, owner string) (bson.M, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}
	if owner != "" {
		filter["email"] = owner
	}
	return filter, nil
}

// newDocument converts v into a document with the given id and creation
// time. Hex ids are stored as ObjectIDs.
func newDocument(v any, id string, createdAt time.Time) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		doc["_id"] = oid
	} else {
		doc["_id"] = id
	}
	doc["createdAt"] = createdAt

	return doc, nil
}

// userInsertIfAbsent builds an upsert that only writes on insert, so an
// existing user with the email is left untouched.
func userInsertIfAbsent(user models.User, id string, createdAt time.Time) (bson.M, bson.M, error) {
	doc, err := newDocument(user, id, createdAt)
	if err != nil {
		return nil, nil, err
	}

	return bson.M{"email": user.Email}, bson.M{"$setOnInsert": doc}, nil
}

func emailFilter(email string) bson.M {
	return bson.M{"email": email}
}

func userFilter(filter models.UserFilter) bson.M {
	f := bson.M{}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		f["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
		}
	}
	if filter.Role != models.RoleNone {
		f["role"] = string(filter.Role)
	}
	return f
}

func courseFilter(filter models.CourseFilter) bson.M {
	f := bson.M{}
	if filter.Status != "" {
		f["status"] = string(filter.Status)
	}
	if filter.Email != "" {
		f["email"] = filter.Email
	}
	return f
}

func teacherFilter(filter models.TeacherFilter) bson.M {
	f := bson.M{}
	if filter.Email != "" {
		f["email"] = filter.Email
	}
	if filter.Status != "" {
		f["status"] = string(filter.Status)
	}
	return f
}

func enrollmentFilter(filter models.EnrollmentFilter) bson.M {
	f := bson.M{}
	if filter.Email != "" {
		f["email"] = filter.Email
	}
	if filter.EnrollID != "" {
		f["enrollId"] = filter.EnrollID
	}
	return f
}

// courseUpdateDoc returns nil when the update sets nothing.
func courseUpdateDoc(update models.CourseUpdate) bson.M {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(set) == 0 {
		return nil
	}
	return bson.M{"$set": set}
}

func setField(field string, value any) bson.M {
	return bson.M{"$set": bson.M{field: value}}
}

func incrementField(field string) bson.M {
	return bson.M{"$inc": bson.M{field: 1}}
}

// popularCoursesQuery selects approved courses by enrollment, highest
// first, ids ascending on ties.
func popularCoursesQuery(limit int) (bson.M, *options.FindOptions) {
	opts := options.Find().
		SetSort(bson.D{{Key: "totalEnrollment", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))

	return bson.M{"status": string(models.StatusApproved)}, opts
}

func sumEnrollmentPipeline(id string) (mongo.Pipeline, error) {
	match, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: "$totalEnrollment"}}},
		}}},
	}, nil
}

// sortByID orders documents in insertion order.
func sortByID() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
}

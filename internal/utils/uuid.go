// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDGenerator produces new document identifiers. Generated identifiers sort
// in creation order.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues UUIDv7 strings, used by the SQL backends.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ObjectIDGenerator issues 24-hex ObjectID strings, used by the MongoDB backend.
type ObjectIDGenerator struct {
}

func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{}
}

func (g *ObjectIDGenerator) Generate() string {
	return primitive.NewObjectID().Hex()
}

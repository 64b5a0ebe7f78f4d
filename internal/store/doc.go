// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the document store behind the course-plus
// services.
//
// Every entity has a repository interface with two implementations: a SQL
// one shared by PostgreSQL (pgx) and SQLite (go-sqlite3), queries built with
// squirrel, and a MongoDB one. [NewStorages] picks the backend from the DSN
// scheme. Driver errors are mapped onto [ErrNotFound], [ErrAlreadyExists]
// and [ErrStoreUnavailable] so callers never inspect driver types.
package store

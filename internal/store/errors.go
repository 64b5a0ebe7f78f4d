// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a single-document lookup matches nothing.
	ErrNotFound = errors.New("document was not found")

	// ErrUserAlreadyExists is returned by [UserRepository.CreateUserIfAbsent]
	// when a user with the same email is already stored.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrAlreadyExists is returned when an insert violates a unique key
	// other than the user email.
	ErrAlreadyExists = errors.New("document already exists")

	// ErrStoreUnavailable wraps transient failures: lost connections,
	// timeouts, deadlocks, busy databases.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrInvalidID is returned when an identifier is empty.
	ErrInvalidID = errors.New("invalid document id")

	// ErrUnsupportedDSN is returned by [NewStorages] for an unknown DSN scheme.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level operation errors. These are wrapped by repository methods when a
// store-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingQuery is returned when constructing a query or document fails.
	ErrBuildingQuery = errors.New("error building query")

	// ErrExecutingQuery is returned when executing a read fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrExecutingStatement is returned when executing a write fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when decoding a single row or document fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan rows")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	errMissingAuthorization = errors.New("missing Authorization header")
	errNotBearer            = errors.New("authorization header is not a bearer token")

	// ErrNoEmailInContext means a guard ran without auth in front of it.
	ErrNoEmailInContext = errors.New("no authenticated email in request context")
)

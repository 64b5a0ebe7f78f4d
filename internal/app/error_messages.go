// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// course-plus HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The front end matches some of them literally, so their
// wording is part of the API.
package app

const (
	// MsgUnauthorized answers a missing, malformed, expired or tampered
	// bearer token.
	MsgUnauthorized = "unauthorized access"

	// MsgForbidden answers an authenticated caller without the required role,
	// or one asking for another user's data.
	MsgForbidden = "forbidden access"

	// MsgInvalidJSON answers a request body that is absent or not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgUserAlreadyExists is the body of a duplicate user registration,
	// which is answered with 200.
	MsgUserAlreadyExists = "user already exists"

	// MsgServerRunning is the body of the root liveness route.
	MsgServerRunning = "course plus server is running"
)

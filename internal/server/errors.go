// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNothingToServe means the config enabled no transport that has a handler.
	ErrNothingToServe = errors.New("no HTTP or gRPC transport configured")
	// ErrListen wraps a failed bind on either transport.
	ErrListen = errors.New("cannot listen")
)

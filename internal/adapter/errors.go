// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrGatewayUnavailable covers transport failures, provider 5xx and 429
	// responses, and a gateway without credentials.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayRejected is returned when the provider refuses the request
	// (4xx other than 429).
	ErrGatewayRejected = errors.New("payment gateway rejected request")

	// ErrInvalidAmount is returned for a non-positive amount.
	ErrInvalidAmount = errors.New("invalid payment amount")
)

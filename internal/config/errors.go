// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPaymentConfigs indicates an unknown payment provider.
	ErrInvalidPaymentConfigs = errors.New("invalid payment configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive health interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the course-plus server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (loaded into the environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The legacy variable names PORT, DB_USER, DB_PASS, ACCESS_TOKEN_SECRET and
// STRIPE_SECRET_KEY are honoured when their structured counterparts are
// empty. The main entry point is [GetStructuredConfig].
package config

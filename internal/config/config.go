// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// course-plus server. It aggregates all sub-configurations and is populated
// by merging values from a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the application version and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the document store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, CORS and timeout settings for the HTTP
	// and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Payment holds the payment gateway settings.
	Payment Payment `envPrefix:"PAYMENT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Compat holds the un-prefixed variable names of the first deployments
	// (PORT, DB_USER, DB_PASS, ACCESS_TOKEN_SECRET, STRIPE_SECRET_KEY).
	// They are folded into the structured fields by [StructuredConfig.applyCompat].
	Compat Compat

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the shared secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the absolute lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the document store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the document store backend.
// The DSN scheme selects the backend: mongodb:// or mongodb+srv:// for
// MongoDB, postgres:// or postgresql:// for PostgreSQL, sqlite:// for SQLite.
type DB struct {
	// DSN is the connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`

	// Name is the MongoDB database name. Ignored by SQL backends.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allowlist. "*" allows every origin but
	// disables credentialed requests.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Payment holds the payment gateway settings.
type Payment struct {
	// Provider is "stripe" or "midtrans".
	// Env: PAYMENT_PROVIDER
	Provider string `env:"PROVIDER"`

	// SecretKey is the gateway secret (Stripe secret key or Midtrans server key).
	// Env: PAYMENT_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Currency is the fixed ISO currency code of every intent.
	// Env: PAYMENT_CURRENCY
	Currency string `env:"CURRENCY"`

	// BaseURL is the Stripe API base URL.
	// Env: PAYMENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Production switches Midtrans from sandbox to production.
	// Env: PAYMENT_PRODUCTION
	Production bool `env:"PRODUCTION"`

	// Timeout bounds a single gateway call.
	// Env: PAYMENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is the period of the store health probe.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Compat holds the variable names used before the structured layout existed.
type Compat struct {
	Port              string `env:"PORT"`
	DBUser            string `env:"DB_USER"`
	DBPass            string `env:"DB_PASS"`
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`
	StripeSecretKey   string `env:"STRIPE_SECRET_KEY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. .env file in the working directory (never overrides real env vars)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied after merging. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

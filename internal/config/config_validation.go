// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Payment providers accepted by [Payment.Provider].
const (
	ProviderStripe   = "stripe"
	ProviderMidtrans = "midtrans"
)

const (
	defaultPort           = "5000"
	defaultTokenIssuer    = "course-plus"
	defaultTokenDuration  = 9 * time.Hour
	defaultVersion        = "dev"
	defaultRequestTimeout = 30 * time.Second
	defaultDBName         = "courseDB"
	defaultCurrency       = "usd"
	defaultStripeBaseURL  = "https://api.stripe.com"
	defaultPaymentTimeout = 15 * time.Second
	defaultHealthInterval = 30 * time.Second

	// defaultAllowedOrigin is the front-end dev server.
	defaultAllowedOrigin = "http://localhost:5173"

	compatMongoHost   = "cluster3.ggy8e.mongodb.net"
	compatMongoParams = "retryWrites=true&w=majority&appName=Cluster3"
)

// applyCompat folds the legacy un-prefixed variables into the structured
// fields. Structured values always win.
func (cfg *StructuredConfig) applyCompat() {
	c := cfg.Compat

	if cfg.Server.HTTPAddress == "" && c.Port != "" {
		cfg.Server.HTTPAddress = ":" + c.Port
	}
	if cfg.Storage.DB.DSN == "" && c.DBUser != "" && c.DBPass != "" {
		u := url.URL{
			Scheme:   "mongodb+srv",
			User:     url.UserPassword(c.DBUser, c.DBPass),
			Host:     compatMongoHost,
			Path:     "/",
			RawQuery: compatMongoParams,
		}
		cfg.Storage.DB.DSN = u.String()
	}
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = c.AccessTokenSecret
	}
	if cfg.Payment.SecretKey == "" {
		cfg.Payment.SecretKey = c.StripeSecretKey
	}
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + defaultPort
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{defaultAllowedOrigin}
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
	if cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = defaultDBName
	}
	if cfg.Payment.Provider == "" {
		cfg.Payment.Provider = ProviderStripe
	}
	cfg.Payment.Provider = strings.ToLower(cfg.Payment.Provider)
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = defaultCurrency
	}
	if cfg.Payment.BaseURL == "" {
		cfg.Payment.BaseURL = defaultStripeBaseURL
	}
	if cfg.Payment.Timeout == 0 {
		cfg.Payment.Timeout = defaultPaymentTimeout
	}
	if cfg.Workers.HealthInterval == 0 {
		cfg.Workers.HealthInterval = defaultHealthInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Payment.Provider {
	case ProviderStripe, ProviderMidtrans:
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidPaymentConfigs, cfg.Payment.Provider)
	}

	if cfg.Workers.HealthInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_StructuredConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, cfg *StructuredConfig)
		wantErr bool
	}{
		{
			name: "app values",
			envVars: map[string]string{
				"APP_TOKEN_SIGN_KEY": "secret",
				"APP_TOKEN_ISSUER":   "issuer",
				"APP_TOKEN_DURATION": "2h",
				"APP_LOG_LEVEL":      "info",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "secret", cfg.App.TokenSignKey)
				assert.Equal(t, "issuer", cfg.App.TokenIssuer)
				assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
				assert.Equal(t, "info", cfg.App.LogLevel)
			},
		},
		{
			name: "storage and server",
			envVars: map[string]string{
				"STORAGE_DB_DSN":         "sqlite://course.db",
				"STORAGE_DB_NAME":        "courses",
				"SERVER_ADDRESS":         ":8080",
				"SERVER_ALLOWED_ORIGINS": "http://a.test,http://b.test",
				"SERVER_REQUEST_TIMEOUT": "5s",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "sqlite://course.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "courses", cfg.Storage.DB.Name)
				assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
			},
		},
		{
			name: "payment and compat",
			envVars: map[string]string{
				"PAYMENT_PROVIDER":    "midtrans",
				"PAYMENT_PRODUCTION":  "true",
				"PORT":                "7000",
				"ACCESS_TOKEN_SECRET": "legacy",
				"STRIPE_SECRET_KEY":   "sk_test",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "midtrans", cfg.Payment.Provider)
				assert.True(t, cfg.Payment.Production)
				assert.Equal(t, "7000", cfg.Compat.Port)
				assert.Equal(t, "legacy", cfg.Compat.AccessTokenSecret)
				assert.Equal(t, "sk_test", cfg.Compat.StripeSecretKey)
			},
		},
		{
			name:    "invalid duration",
			envVars: map[string]string{"APP_TOKEN_DURATION": "forever"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

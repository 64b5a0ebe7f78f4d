// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/service"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "http only", cfg: config.Server{HTTPAddress: ":5000"}, wantHTTP: true},
		{name: "http and grpc", cfg: config.Server{HTTPAddress: ":5000", GRPCAddress: ":5001"}, wantHTTP: true, wantGRPC: true},
		{name: "grpc only", cfg: config.Server{GRPCAddress: ":5001"}, wantGRPC: true},
		{name: "nothing", wantErr: ErrNoTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlers, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, handlers.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, handlers.GRPC != nil)
		})
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/handler/grpc"
	"github.com/MKhiriev/course-plus/internal/handler/http"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/service"
)

// ErrNoTransport means neither an HTTP nor a gRPC address was configured.
var ErrNoTransport = errors.New("neither HTTP nor gRPC address configured")

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, ErrNoTransport
	}

	return handlers, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/course-plus/internal/adapter"
	"github.com/MKhiriev/course-plus/internal/config"
	"github.com/MKhiriev/course-plus/internal/handler"
	"github.com/MKhiriev/course-plus/internal/logger"
	"github.com/MKhiriev/course-plus/internal/server"
	"github.com/MKhiriev/course-plus/internal/service"
	"github.com/MKhiriev/course-plus/internal/store"
	"github.com/MKhiriev/course-plus/internal/workers"
	"github.com/MKhiriev/course-plus/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("course-plus-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("payment_provider", cfg.Payment.Provider).
		Str("app_version", cfg.App.Version).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.HealthChecker.Close(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("error closing storage")
		}
	}()

	gateway, err := adapter.NewPaymentGateway(cfg.Payment, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating payment gateway")
	}

	services, err := service.NewServices(storages, gateway, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var reporter workers.StatusReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	bg := workers.NewWorkers(
		workers.NewHealthProbe(storages.HealthChecker, reporter, cfg.Workers.HealthInterval, log),
	)
	workersDone := make(chan struct{})
	go func() {
		bg.Run(ctx)
		close(workersDone)
	}()

	srv.RunServer(ctx)

	cancel()
	<-workersDone
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

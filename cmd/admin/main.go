// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/saas-admin/internal/adapter"
	"github.com/MKhiriev/saas-admin/internal/api"
	"github.com/MKhiriev/saas-admin/internal/client"
	"github.com/MKhiriev/saas-admin/internal/config"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/metrics"
	"github.com/MKhiriev/saas-admin/internal/service"
	"github.com/MKhiriev/saas-admin/internal/store"
	"github.com/MKhiriev/saas-admin/internal/tui"
	"github.com/MKhiriev/saas-admin/internal/validators"
	"github.com/MKhiriev/saas-admin/internal/workers"
	"github.com/MKhiriev/saas-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("saas-admin").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewConsoleLogger("saas-admin", cfg.App.LogFile, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session storage")
	}
	defer storages.Close()

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, store.NewTokenSource(storages.Sessions, log), log, adapter.WithMetrics(m))
	if err != nil {
		log.Fatal().Err(err).Msg("create api transport")
	}

	registry, err := api.NewDefaultRegistry(cfg.Adapter.AuthPrefix)
	if err != nil {
		log.Fatal().Err(err).Msg("register api operations")
	}

	cache := api.NewCache(log, api.WithCacheMetrics(m))
	apiClient := api.NewClient(registry, transport, cache, log)

	services := service.NewServices(apiClient, storages.Sessions, validators.NewFormValidator(), log)
	ui := tui.New(services, cache, buildInfo, log)
	background := workers.NewWorkers(cfg.Workers, cfg.Cache, cache, m, buildInfo, log)

	app := client.NewApp(services, ui, background, log)
	if err = app.Run(ctx); err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("console run error")
	}
}

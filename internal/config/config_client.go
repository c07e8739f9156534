// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds console-level settings.
type ClientApp struct {
	LogLevel string
	LogFile  string
}

// ClientAdapter holds network settings used by the API transport.
type ClientAdapter struct {
	// BaseURL is the remote API base URL.
	BaseURL string
	// AuthPrefix is prepended to the auth routes.
	AuthPrefix string
	// RequestTimeout is the per-request timeout; zero means none.
	RequestTimeout time.Duration
}

// ClientDB contains session database settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups session storage settings.
type ClientStorage struct {
	// DB holds session database settings.
	DB ClientDB
}

// ClientCache holds query cache settings.
type ClientCache struct {
	KeepUnusedFor time.Duration
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SweepInterval defines how often the cache sweeper runs.
	SweepInterval time.Duration
	// MetricsAddress is the Prometheus listen address, empty when disabled.
	MetricsAddress string
}

// ClientConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Cache   ClientCache
	Workers ClientWorkers
}

// GetClientConfig builds and validates the console view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the console.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			AuthPrefix:     cfg.Adapter.AuthPrefix,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Cache: ClientCache{KeepUnusedFor: cfg.Cache.KeepUnusedFor},
		Workers: ClientWorkers{
			SweepInterval:  cfg.Workers.SweepInterval,
			MetricsAddress: cfg.Workers.MetricsAddress,
		},
	}
}

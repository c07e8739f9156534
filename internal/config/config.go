// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// saas-admin console. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds the query cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App groups application-wide settings.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the console writes its logs. Relative paths are
	// resolved next to the executable.
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the session storage backend.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the session database connection settings.
type DB struct {
	// DSN is the SQLite file path. ":memory:" keeps the session in process
	// memory only.
	DSN string `env:"DSN"`
}

// Adapter holds the remote REST API settings.
type Adapter struct {
	// BaseURL is the API base URL. It may be empty; requests then fail when
	// they are made, not at startup.
	BaseURL string `env:"BASE_URL"`

	// AuthPrefix is prepended to the /auth/* routes.
	AuthPrefix string `env:"AUTH_PREFIX"`

	// RequestTimeout bounds each outbound request. Zero leaves the transport
	// default in place.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds the query cache settings.
type Cache struct {
	// KeepUnusedFor is how long a cached query result survives without being
	// read before the sweeper drops it.
	KeepUnusedFor time.Duration `env:"KEEP_UNUSED_FOR"`
}

// Workers holds background worker settings.
type Workers struct {
	// SweepInterval is the cache sweeper period.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// MetricsAddress is the host:port of the Prometheus endpoint. Empty
	// disables it.
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Default values applied after all other sources.
const (
	DefaultDSN           = "admin-session.db"
	DefaultLogLevel      = "debug"
	DefaultLogFile       = "logs"
	DefaultKeepUnusedFor = 60 * time.Second
	DefaultSweepInterval = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{LogLevel: DefaultLogLevel, LogFile: DefaultLogFile},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Cache:   Cache{KeepUnusedFor: DefaultKeepUnusedFor},
		Workers: Workers{SweepInterval: DefaultSweepInterval},
	}
}

// GetStructuredConfig loads the merged configuration from the environment,
// the process command line, an optional JSON file and the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

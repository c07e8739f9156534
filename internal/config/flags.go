// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the console command line into a partial
// [StructuredConfig]. Flags that are not given stay zero so that mergo can
// fill them from the other sources.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var metricsAddress NetAddress
	var baseURL string
	var authPrefix string
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var logFile string
	var requestTimeout time.Duration
	var keepUnusedFor time.Duration
	var sweepInterval time.Duration

	fs := flag.NewFlagSet("saas-admin", flag.ContinueOnError)
	fs.StringVar(&baseURL, "base-url", "", "API base URL (e.g. https://api.example.com)")
	fs.StringVar(&authPrefix, "auth-prefix", "", "Prefix for the /auth routes (e.g. /super-admin)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Session database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&keepUnusedFor, "keep-unused-for", 0, "Drop cached results unused for this long")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Cache sweeper period")
	fs.Var(&metricsAddress, "metrics-address", "Prometheus endpoint host:port")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			AuthPrefix:     authPrefix,
			RequestTimeout: requestTimeout,
		},
		Cache: Cache{KeepUnusedFor: keepUnusedFor},
		Workers: Workers{
			SweepInterval:  sweepInterval,
			MetricsAddress: metricsAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strings"
)

func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate checks the console configuration. An empty BaseURL is accepted
// on purpose: requests fail individually until one is configured.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Cache.KeepUnusedFor <= 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	if addr := cfg.Workers.MetricsAddress; addr != "" {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return ErrInvalidWorkerConfigs
		}
	}

	return nil
}

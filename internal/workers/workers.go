// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"

	"github.com/MKhiriev/saas-admin/internal/config"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/metrics"
	"github.com/MKhiriev/saas-admin/models"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the cache sweeper and, when an address is configured,
// the metrics server.
func NewWorkers(cfg config.ClientWorkers, cache config.ClientCache, sweeper Sweeper, m *metrics.Metrics, buildInfo models.AppBuildInfo, logger *logger.Logger) *Workers {
	ws := &Workers{
		workers: []Worker{NewCacheSweeper(sweeper, cfg.SweepInterval, cache.KeepUnusedFor, logger)},
	}

	if cfg.MetricsAddress != "" && m != nil {
		ws.workers = append(ws.workers, NewMetricsServer(cfg.MetricsAddress, m.Registry(), buildInfo, logger))
	}

	return ws
}

// Run starts every worker in order. If one fails, the ones already started
// are stopped.
func (w *Workers) Run(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			for j := i - 1; j >= 0; j-- {
				w.workers[j].Stop()
			}
			return fmt.Errorf("start worker %d: %w", i, err)
		}
	}
	return nil
}

// Stop stops every worker in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

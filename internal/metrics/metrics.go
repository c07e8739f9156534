// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics provides Prometheus metrics for the saas-admin console.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "saas_admin"

// Metrics holds the console collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	// RequestsTotal counts API requests by operation and status code.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration measures API request duration.
	RequestDuration *prometheus.HistogramVec

	// CacheLookupsTotal counts cache reads by operation and result (hit, miss, stale).
	CacheLookupsTotal *prometheus.CounterVec

	// InvalidationsTotal counts stale markings by tag.
	InvalidationsTotal *prometheus.CounterVec

	// CacheEntries tracks the number of cached query results.
	CacheEntries prometheus.Gauge
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of API requests",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Duration of API requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Total number of cache lookups",
			},
			[]string{"operation", "result"},
		),
		InvalidationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_invalidations_total",
				Help:      "Total number of cache entries marked stale",
			},
			[]string{"tag"},
		),
		CacheEntries: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cache_entries",
				Help:      "Number of cached query results",
			},
		),
	}
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordRequest records one API request. status is the HTTP status code, or
// 0 when no response was received.
func (m *Metrics) RecordRequest(operation string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.RequestsTotal.WithLabelValues(operation, label).Inc()
	m.RequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordLookup records a cache read. result is one of "hit", "miss", "stale".
func (m *Metrics) RecordLookup(operation, result string) {
	if m == nil {
		return
	}
	m.CacheLookupsTotal.WithLabelValues(operation, result).Inc()
}

// RecordInvalidation records count entries marked stale for tag.
func (m *Metrics) RecordInvalidation(tag string, count int) {
	if m == nil {
		return
	}
	m.InvalidationsTotal.WithLabelValues(tag).Add(float64(count))
}

// SetCacheEntries sets the cached entries gauge.
func (m *Metrics) SetCacheEntries(n int) {
	if m == nil {
		return
	}
	m.CacheEntries.Set(float64(n))
}

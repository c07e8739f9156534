// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// MetricsServer exposes the console's Prometheus registry over HTTP.
//
// Routes:
//   - GET /metrics  Prometheus exposition format
//   - GET /healthz  liveness probe
//   - GET /version  build information as JSON
type MetricsServer struct {
	address   string
	registry  *prometheus.Registry
	buildInfo models.AppBuildInfo

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
	done     chan struct{}

	logger *logger.Logger
}

func NewMetricsServer(address string, registry *prometheus.Registry, buildInfo models.AppBuildInfo, logger *logger.Logger) *MetricsServer {
	return &MetricsServer{
		address:   address,
		registry:  registry,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Handler builds the router served by the metrics server.
func (m *MetricsServer) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(m.withLogging)

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/version", m.version)

	return router
}

// Addr returns the bound listen address, or the configured one when the
// server is not running.
func (m *MetricsServer) Addr() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listener != nil {
		return m.listener.Addr().String()
	}
	return m.address
}

// Run binds the listen address and serves in the background. The server is
// shut down when ctx is cancelled or Stop is called.
func (m *MetricsServer) Run(ctx context.Context) error {
	m.Stop()

	listener, err := net.Listen("tcp", m.address)
	if err != nil {
		return fmt.Errorf("metrics server listen on %q: %w", m.address, err)
	}

	server := &http.Server{
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	done := make(chan struct{})

	m.mu.Lock()
	m.server, m.listener, m.done = server, listener, done
	m.mu.Unlock()

	go func() {
		defer close(done)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			m.Stop()
		case <-done:
		}
	}()

	m.logger.Info().Str("address", listener.Addr().String()).Msg("metrics server started")
	return nil
}

// Stop gracefully shuts the server down.
func (m *MetricsServer) Stop() {
	m.mu.Lock()
	server, done := m.server, m.done
	m.server, m.listener, m.done = nil, nil, nil
	m.mu.Unlock()

	if server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		m.logger.Warn().Err(err).Msg("metrics server shutdown")
	}
	<-done
}

func (m *MetricsServer) version(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"version": m.buildInfo.BuildVersion(),
		"date":    m.buildInfo.BuildDate(),
		"commit":  m.buildInfo.BuildCommit(),
	})
}

func (m *MetricsServer) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		m.logger.Debug().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Int("size", ww.BytesWritten()).
			Send()
	})
}

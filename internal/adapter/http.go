// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/saas-admin/internal/config"
	"github.com/MKhiriev/saas-admin/internal/logger"
	"github.com/MKhiriev/saas-admin/internal/metrics"
	"github.com/MKhiriev/saas-admin/internal/utils"
	"github.com/MKhiriev/saas-admin/models"
	"github.com/go-resty/resty/v2"
)

const (
	headerRequestID = "X-Request-ID"
	unknownOp       = "unknown"
)

type httpTransport struct {
	client  *utils.HTTPClient
	baseURL string

	tokens  TokenSource
	ids     *utils.UUIDGenerator
	metrics *metrics.Metrics

	logger *logger.Logger
}

// Option customises the transport built by [NewHTTPTransport].
type Option func(*httpTransport)

// WithMetrics records every request on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *httpTransport) {
		t.metrics = m
	}
}

// NewHTTPTransport constructs the resty implementation of [Transport].
//
// An empty adapterCfg.BaseURL is accepted: every request then fails with a
// *TransportError wrapping [ErrBaseURLNotConfigured]. A non-empty base URL
// that cannot be parsed is rejected here. tokens may be nil, in which case no
// request is authenticated.
func NewHTTPTransport(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger, opts ...Option) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	t := &httpTransport{
		client:  utils.NewHTTPClient(adapterCfg.RequestTimeout),
		baseURL: baseURL,
		tokens:  tokens,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.client.SetBaseURL(baseURL)
	t.client.OnBeforeRequest(t.injectHeaders)

	return t, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// injectHeaders runs before every request. The Authorization header is only
// set when a token is present; otherwise it is absent, never empty.
func (t *httpTransport) injectHeaders(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(headerRequestID) == "" {
		r.SetHeader(headerRequestID, t.ids.Generate())
	}

	if t.tokens == nil {
		return nil
	}
	if token, ok := t.tokens.Token(r.Context()); ok && strings.TrimSpace(token) != "" {
		r.SetAuthToken(strings.TrimSpace(token))
	}

	return nil
}

// Do implements [Transport].
func (t *httpTransport) Do(ctx context.Context, req models.Request) ([]byte, error) {
	op, ok := utils.GetOperationFromContext(ctx)
	if !ok {
		op = unknownOp
	}
	log := t.logger.With().
		Str("operation", op).
		Str("method", req.Method).
		Str("url", req.URL).
		Logger()

	if t.baseURL == "" {
		log.Error().Err(ErrBaseURLNotConfigured).Msg("request not sent")
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: ErrBaseURLNotConfigured}
	}

	r := t.client.R().SetContext(ctx)
	if req.HasBody() {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.URL)
	duration := time.Since(start)
	requestID := r.Header.Get(headerRequestID)

	if err != nil {
		t.metrics.RecordRequest(op, 0, duration)
		log.Error().Err(err).
			Str("request_id", requestID).
			Dur("duration", duration).
			Msg("request failed without response")
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}

	t.metrics.RecordRequest(op, resp.StatusCode(), duration)
	event := log.Debug()
	if resp.IsError() {
		event = log.Warn()
	}
	event.
		Int("status", resp.StatusCode()).
		Str("request_id", requestID).
		Dur("duration", duration).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

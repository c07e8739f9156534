// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the base transport shared by every API operation.
//
// The primary abstraction is [Transport]: it resolves a [models.Request]
// against the configured base URL, injects the bearer token and a request id,
// and maps the outcome to either the raw response body, an [*APIError] (a
// response with a non-2xx status) or a [*TransportError] (no response).
//
// Status sentinels defined in errors.go are reachable through [*APIError]
// with [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/saas-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport executes a built request against the remote API.
type Transport interface {
	// Do sends req and returns the response body of a 2xx response. Any other
	// outcome is returned as *APIError or *TransportError.
	Do(ctx context.Context, req models.Request) ([]byte, error)
}

// TokenSource supplies the bearer token for outgoing requests.
type TokenSource interface {
	// Token returns the stored token and whether one is present. A missing
	// token is not an error: the request goes out without Authorization.
	Token(ctx context.Context) (string, bool)
}

// TokenSourceFunc adapts a plain function to [TokenSource].
type TokenSourceFunc func(ctx context.Context) (string, bool)

// Token implements [TokenSource].
func (f TokenSourceFunc) Token(ctx context.Context) (string, bool) {
	return f(ctx)
}

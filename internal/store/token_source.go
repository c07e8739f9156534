// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/saas-admin/internal/logger"
)

// TokenSource reads the bearer token from a [SessionStore] on every call.
// It satisfies adapter.TokenSource.
type TokenSource struct {
	sessions SessionStore
	logger   *logger.Logger
}

func NewTokenSource(sessions SessionStore, logger *logger.Logger) *TokenSource {
	return &TokenSource{sessions: sessions, logger: logger}
}

// Token returns the stored token. Storage failures are logged and reported
// as "no token": the request then goes out unauthenticated and the server
// rejects it if needed.
func (t *TokenSource) Token(ctx context.Context) (string, bool) {
	token, err := t.sessions.Get(ctx, TokenKey)
	if err != nil {
		if !errors.Is(err, ErrSessionValueNotFound) {
			t.logger.Err(err).Str("func", "TokenSource.Token").Msg("failed to read session token")
		}
		return "", false
	}

	return token, token != ""
}

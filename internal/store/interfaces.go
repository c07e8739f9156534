// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the console session: a small key/value table that
// holds the bearer token between runs.
//
// Two implementations of [SessionStore] are provided: a SQLite one (schema
// managed by goose migrations, queries built with squirrel) and an in-memory
// one used for the ":memory:" DSN and in tests.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// TokenKey is the session key under which the bearer token is stored.
const TokenKey = "token"

// SessionStore is an opaque key/value accessor for session credentials.
type SessionStore interface {
	// Get returns the value stored under key, or ErrSessionValueNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

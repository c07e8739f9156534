// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/saas-admin/internal/logger"
)

type sqliteSessionStore struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLiteSessionStore returns a [SessionStore] backed by the session_values
// table of db. The schema must already be migrated.
func NewSQLiteSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &sqliteSessionStore{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sqliteSessionStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptySessionKey
	}
	log := logger.FromContext(ctx)

	query, args, err := buildGetSessionValueQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionValueNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteSessionStore.Get").
			Str("key", key).
			Msg("failed to query session value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteSessionStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptySessionKey
	}
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionValueQuery(key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteSessionStore.Set").
			Str("key", key).
			Msg("failed to upsert session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptySessionKey
	}
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionValueQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteSessionStore.Delete").
			Str("key", key).
			Msg("failed to delete session value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/saas-admin/internal/config"
	"github.com/MKhiriev/saas-admin/internal/logger"
)

// MemoryDSN selects the in-memory session store.
const MemoryDSN = ":memory:"

// Storages groups the console storage layer.
type Storages struct {
	// Sessions holds the bearer token between runs.
	Sessions SessionStore

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration.
// For [MemoryDSN] it returns an in-memory store. Otherwise it:
//  1. opens the SQLite file at cfg.DB.DSN, creating it when missing;
//  2. runs pending schema migrations via [DB.Migrate];
//  3. wires a SQLite [SessionStore] on top of it.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &Storages{Sessions: NewMemorySessionStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Sessions: NewSQLiteSessionStore(db, logger),
		db:       db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

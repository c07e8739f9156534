// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memorySessionStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySessionStore returns a [SessionStore] that keeps values in process
// memory. Nothing survives a restart.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{values: make(map[string]string)}
}

func (m *memorySessionStore) Get(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptySessionKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrSessionValueNotFound
	}
	return value, nil
}

func (m *memorySessionStore) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptySessionKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memorySessionStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptySessionKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

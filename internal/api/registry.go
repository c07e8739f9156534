// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Registry holds operation descriptors by name. Descriptors are immutable
// once registered: Lookup hands out copies.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operation
}

func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// NewDefaultRegistry returns a registry holding [DefaultOperations].
func NewDefaultRegistry(authPrefix string) (*Registry, error) {
	r := NewRegistry()
	for _, op := range DefaultOperations(authPrefix) {
		if err := r.Register(op); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds op. It fails for an empty name, a missing builder, an unknown
// kind, or a name that is already registered.
func (r *Registry) Register(op Operation) error {
	if strings.TrimSpace(op.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidOperation)
	}
	if op.Build == nil {
		return fmt.Errorf("%w: %s has no builder", ErrInvalidOperation, op.Name)
	}
	if op.Kind != Query && op.Kind != Mutation {
		return fmt.Errorf("%w: %s has kind %s", ErrInvalidOperation, op.Name, op.Kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ops[op.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateOperation, op.Name)
	}
	r.ops[op.Name] = clone(op)
	return nil
}

// Lookup returns a copy of the descriptor registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	op, ok := r.ops[name]
	if !ok {
		return Operation{}, false
	}
	return clone(op), true
}

// Names returns the registered operation names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clone(op Operation) Operation {
	op.Provides = slices.Clone(op.Provides)
	op.Invalidates = slices.Clone(op.Invalidates)
	return op
}

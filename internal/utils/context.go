// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the console:
// context keys, the HTTP client wrapper, JWT inspection and request id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperationCtxKey is the key used to store the API operation name in the
// context. The transport reads it to label logs and metrics.
var OperationCtxKey = contextKey("operation")

// WithOperation returns a copy of ctx carrying the operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, OperationCtxKey, operation)
}

// GetOperationFromContext retrieves the operation name from the context.
//
// Returns the name and an ok flag:
//   - ok == true : value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetOperationFromContext(ctx context.Context) (string, bool) {
	op, ok := ctx.Value(OperationCtxKey).(string)
	return op, ok && op != ""
}

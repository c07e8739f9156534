// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestOperationCtxKey(t *testing.T) {
	if OperationCtxKey.String() != "operation" {
		t.Errorf("expected 'operation', got '%s'", OperationCtxKey.String())
	}
}

func TestGetOperationFromContext_Success(t *testing.T) {
	ctx := WithOperation(context.Background(), "getAllTenants")

	op, ok := GetOperationFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if op != "getAllTenants" {
		t.Errorf("expected getAllTenants, got %s", op)
	}
}

func TestGetOperationFromContext_Missing(t *testing.T) {
	op, ok := GetOperationFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if op != "" {
		t.Errorf("expected empty operation, got %s", op)
	}
}

func TestGetOperationFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OperationCtxKey, 42)

	if _, ok := GetOperationFromContext(ctx); ok {
		t.Fatal("expected ok=false for non-string value")
	}
}

func TestGetOperationFromContext_Empty(t *testing.T) {
	ctx := WithOperation(context.Background(), "")

	if _, ok := GetOperationFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty operation")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by session store methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionValueNotFound is returned by Get when nothing is stored under
	// the requested key.
	ErrSessionValueNotFound = errors.New("session value not found")

	// ErrEmptySessionKey is returned when an operation is called with an
	// empty key.
	ErrEmptySessionKey = errors.New("session key is empty")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)

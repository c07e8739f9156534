// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the console's background workers and a Workers
// aggregate that starts and stops them together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns once it is running; the work itself
// happens on goroutines owned by the worker. Stop blocks until those
// goroutines have exited and is a no-op for a worker that is not running.
type Worker interface {
	Run(ctx context.Context) error
	Stop()
}

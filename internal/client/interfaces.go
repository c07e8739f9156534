// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable console
// applications.
type Client interface {
	// Run starts the console and blocks until the user exits or ctx is done.
	Run(ctx context.Context) error
}

// UI is the interactive part of the console. *tui.TUI implements it.
type UI interface {
	// LoginFlow blocks until the user signs in. It returns tui.ErrUserQuit
	// when the user leaves instead.
	LoginFlow(ctx context.Context) error
	// MainLoop runs the dashboard and reports whether the session must end.
	MainLoop(ctx context.Context) (logout bool, err error)
}

// Workers are the background jobs running for the lifetime of the console.
type Workers interface {
	Run(ctx context.Context) error
	Stop()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin console runtime.
//
// It wires the terminal UI, the console services and the background workers
// into a single process lifecycle: restore or establish a session, run the
// dashboard, and sign in again after a logout.
package client

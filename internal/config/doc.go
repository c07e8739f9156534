// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the admin console.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo without override, so a value set by an earlier source wins over the
// same value from a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged
// configuration and [GetClientConfig] for the validated console view.
package config

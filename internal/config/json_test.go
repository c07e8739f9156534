// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSONFile(t, `{
		"app": {"log_level": "info", "log_file": "admin.log"},
		"storage": {"db": {"dsn": "/data/session.db"}},
		"adapter": {
			"base_url": "https://api.example.com",
			"auth_prefix": "/super-admin",
			"request_timeout": "20s"
		},
		"cache": {"keep_unused_for": "2m"},
		"workers": {"sweep_interval": 5000000000, "metrics_address": ":9100"}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "admin.log", cfg.App.LogFile)
	assert.Equal(t, "/data/session.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "/super-admin", cfg.Adapter.AuthPrefix)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Cache.KeepUnusedFor)
	assert.Equal(t, 5*time.Second, cfg.Workers.SweepInterval)
	assert.Equal(t, ":9100", cfg.Workers.MetricsAddress)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := writeJSONFile(t, `{"adapter": `)

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := writeJSONFile(t, `{"adapter": {"request_timeout": "forever"}}`)

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := writeJSONFile(t, `{}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}

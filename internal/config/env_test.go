// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"OCTOPUS_URL":              "https://octopus.example.com",
		"OCTOPUS_API_KEY":          "API-KEY",
		"OCTOPUS_REQUEST_TIMEOUT":  "45s",
		"OCTOPUS_DOWNLOAD_TIMEOUT": "20m",

		"EXPORT_SPACE":             "Prod",
		"EXPORT_PASSWORD":          "secret",
		"EXPORT_EXCLUDED_PROJECTS": "Projects-2,Projects-3",
		"EXPORT_OUTPUT_DIR":        "/tmp/out",

		"POLL_ATTEMPTS": "5",
		"POLL_INTERVAL": "3s",

		"RETRY_ATTEMPTS": "4",
		"RETRY_DELAY":    "500ms",

		"LOG_FORMAT": "json",
		"LOG_LEVEL":  "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, Server{
		URL:             "https://octopus.example.com",
		APIKey:          "API-KEY",
		RequestTimeout:  45 * time.Second,
		DownloadTimeout: 20 * time.Minute,
	}, cfg.Server)
	assert.Equal(t, Export{
		Space:            "Prod",
		Password:         "secret",
		ExcludedProjects: "Projects-2,Projects-3",
		OutputDir:        "/tmp/out",
	}, cfg.Export)
	assert.Equal(t, Poll{Attempts: 5, Interval: 3 * time.Second}, cfg.Poll)
	assert.Equal(t, Retry{Attempts: 4, Delay: 500 * time.Millisecond}, cfg.Retry)
	assert.Equal(t, Log{Format: "json", Level: "debug"}, cfg.Log)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Server.URL)
	assert.Zero(t, cfg.Poll.Attempts)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the address of the deployment server and the API key.
	Server Server `envPrefix:"OCTOPUS_"`

	// Export describes what to export and where to put the artifacts.
	Export Export `envPrefix:"EXPORT_"`

	// Poll bounds the wait for the export task's artifacts.
	Poll Poll `envPrefix:"POLL_"`

	// Retry is the policy applied to every API call except artifact polling.
	Retry Retry `envPrefix:"RETRY_"`

	// Log controls diagnostic output.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds connection settings for the deployment server.
type Server struct {
	// URL is the server base URL (e.g. "https://octopus.example.com").
	// Env: OCTOPUS_URL
	URL string `env:"URL"`

	// APIKey is sent in the X-Octopus-ApiKey header of every request.
	// Env: OCTOPUS_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single API call (e.g. "30s").
	// Env: OCTOPUS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// DownloadTimeout bounds a single artifact download (e.g. "10m").
	// Env: OCTOPUS_DOWNLOAD_TIMEOUT
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT"`
}

// Export describes the export job.
type Export struct {
	// Space is the name of the space whose projects are exported.
	// Env: EXPORT_SPACE
	Space string `env:"SPACE"`

	// Password protects the produced archive.
	// Env: EXPORT_PASSWORD
	Password string `env:"PASSWORD"`

	// ExcludedProjects is a comma-separated list of project ids or names
	// left out of the export.
	// Env: EXPORT_EXCLUDED_PROJECTS
	ExcludedProjects string `env:"EXCLUDED_PROJECTS"`

	// OutputDir is where artifacts are written.
	// Env: EXPORT_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// Poll bounds the artifact poll loop.
type Poll struct {
	// Attempts is the maximum number of artifact queries.
	// Env: POLL_ATTEMPTS
	Attempts int `env:"ATTEMPTS"`

	// Interval is the pause between two empty queries.
	// Env: POLL_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Retry is the fixed-interval retry policy for API calls.
type Retry struct {
	// Attempts is the total number of attempts per call.
	// Env: RETRY_ATTEMPTS
	Attempts int `env:"ATTEMPTS"`

	// Delay is the pause between attempts.
	// Env: RETRY_DELAY
	Delay time.Duration `env:"DELAY"`
}

// Log controls the diagnostic logger.
type Log struct {
	// Format is "console" or "json".
	// Env: LOG_FORMAT
	Format string `env:"FORMAT"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Defaults returns the built-in configuration: 30 polls 10s apart
// (five minutes), 3 attempts 2s apart per API call, artifacts written to the
// working directory.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			RequestTimeout:  30 * time.Second,
			DownloadTimeout: 10 * time.Minute,
		},
		Export: Export{
			OutputDir: ".",
		},
		Poll: Poll{
			Attempts: 30,
			Interval: 10 * time.Second,
		},
		Retry: Retry{
			Attempts: 3,
			Delay:    2000 * time.Millisecond,
		},
		Log: Log{
			Format: "console",
			Level:  "info",
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// (see package documentation for the priority order). args are the
// command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

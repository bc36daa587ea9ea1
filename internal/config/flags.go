// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses the command-line flags in args (without the program
// name). Unset flags leave their fields zero so that lower-priority sources
// can fill them.
//
// Flags:
//
//	-octopusUrl the server URL
//	-octopusApiKey the API key
//	-octopusSpace the space to export
//	-exportPassword the exported archive password
//	-excludedProjects comma-separated project ids or names to exclude
//	-output-dir directory for downloaded artifacts
//	-request-timeout timeout of one API call (e.g. "30s")
//	-download-timeout timeout of one artifact download (e.g. "10m")
//	-poll-attempts maximum number of artifact queries
//	-poll-interval pause between artifact queries (e.g. "10s")
//	-retry-attempts attempts per API call
//	-retry-delay pause between attempts (e.g. "2s")
//	-log-format console or json
//	-log-level debug, info, warn, error
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverURL        string
		apiKey           string
		space            string
		exportPassword   string
		excludedProjects string
		outputDir        string
		requestTimeout   time.Duration
		downloadTimeout  time.Duration
		pollAttempts     int
		pollInterval     time.Duration
		retryAttempts    int
		retryDelay       time.Duration
		logFormat        string
		logLevel         string
		jsonConfigPath   string
	)

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.StringVar(&serverURL, "octopusUrl", "", "The Octopus server URL")
	fs.StringVar(&apiKey, "octopusApiKey", "", "The Octopus API key")
	fs.StringVar(&space, "octopusSpace", "", "The Octopus space")
	fs.StringVar(&exportPassword, "exportPassword", "", "The exported archive password")
	fs.StringVar(&excludedProjects, "excludedProjects", "", "Projects to exclude from the export")
	fs.StringVar(&outputDir, "output-dir", "", "Directory for downloaded artifacts")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&downloadTimeout, "download-timeout", 0, "Artifact download timeout (e.g., 10m)")
	fs.IntVar(&pollAttempts, "poll-attempts", 0, "Maximum number of artifact queries")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Pause between artifact queries (e.g., 10s)")
	fs.IntVar(&retryAttempts, "retry-attempts", 0, "Attempts per API call")
	fs.DurationVar(&retryDelay, "retry-delay", 0, "Pause between API call attempts (e.g., 2s)")
	fs.StringVar(&logFormat, "log-format", "", "Log format: console or json")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFlags, fs.Args())
	}

	return &StructuredConfig{
		Server: Server{
			URL:             serverURL,
			APIKey:          apiKey,
			RequestTimeout:  requestTimeout,
			DownloadTimeout: downloadTimeout,
		},
		Export: Export{
			Space:            space,
			Password:         exportPassword,
			ExcludedProjects: excludedProjects,
			OutputDir:        outputDir,
		},
		Poll: Poll{
			Attempts: pollAttempts,
			Interval: pollInterval,
		},
		Retry: Retry{
			Attempts: retryAttempts,
			Delay:    retryDelay,
		},
		Log: Log{
			Format: logFormat,
			Level:  logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "octo-exporter"
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ExporterServer holds the settings used by the transport layer.
type ExporterServer struct {
	URL             string
	APIKey          string
	RequestTimeout  time.Duration
	DownloadTimeout time.Duration
}

// ExporterExport describes the export job.
type ExporterExport struct {
	Space            string
	Password         string
	ExcludedProjects string
	OutputDir        string
}

// ExporterPoll bounds the artifact poll loop.
type ExporterPoll struct {
	Attempts int
	Interval time.Duration
}

// ExporterRetry is the per-call retry policy.
type ExporterRetry struct {
	Attempts int
	Delay    time.Duration
}

// ExporterLog controls diagnostics.
type ExporterLog struct {
	Format string
	Level  string
}

// ExporterConfig is the validated configuration view consumed by the
// exporter, assembled from [StructuredConfig].
type ExporterConfig struct {
	Server ExporterServer
	Export ExporterExport
	Poll   ExporterPoll
	Retry  ExporterRetry
	Log    ExporterLog
}

// GetExporterConfig builds and validates the exporter configuration from
// the merged structured configuration. args are the command-line arguments
// without the program name.
func GetExporterConfig(args []string) (*ExporterConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	exporterCfg := newExporterConfig(cfg)
	if err = exporterCfg.validate(); err != nil {
		return nil, err
	}

	return exporterCfg, nil
}

func newExporterConfig(cfg *StructuredConfig) *ExporterConfig {
	return &ExporterConfig{
		Server: ExporterServer{
			URL:             cfg.Server.URL,
			APIKey:          cfg.Server.APIKey,
			RequestTimeout:  cfg.Server.RequestTimeout,
			DownloadTimeout: cfg.Server.DownloadTimeout,
		},
		Export: ExporterExport{
			Space:            cfg.Export.Space,
			Password:         cfg.Export.Password,
			ExcludedProjects: cfg.Export.ExcludedProjects,
			OutputDir:        cfg.Export.OutputDir,
		},
		Poll: ExporterPoll{
			Attempts: cfg.Poll.Attempts,
			Interval: cfg.Poll.Interval,
		},
		Retry: ExporterRetry{
			Attempts: cfg.Retry.Attempts,
			Delay:    cfg.Retry.Delay,
		},
		Log: ExporterLog{
			Format: cfg.Log.Format,
			Level:  cfg.Log.Level,
		},
	}
}

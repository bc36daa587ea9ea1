// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/app"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/retry"
	"github.com/MKhiriev/octo-exporter/internal/store"
)

// Options carries the policies shared by the services.
type Options struct {
	// Retry wraps every API call except artifact polling and downloading.
	Retry retry.Policy
	// Poll bounds the artifact wait.
	Poll PollPolicy
	// Password protects the exported archive.
	Password string
	// Progress receives operator-facing progress lines. Nil discards them.
	Progress io.Writer
}

// Services groups the pipeline steps.
type Services struct {
	ResolverService ResolverService
	ProjectService  ProjectService
	ExportService   ExportService
	ArtifactService ArtifactService
}

// NewServices wires the pipeline steps on top of serverAdapter and storage.
// Retry notices are printed to opts.Progress.
func NewServices(serverAdapter adapter.ServerAdapter, storage store.ArtifactStorage, opts Options, logger *logger.Logger) (*Services, error) {
	if serverAdapter == nil {
		return nil, errors.New("nil server adapter")
	}
	if storage == nil {
		return nil, errors.New("nil artifact storage")
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	policy := opts.Retry.OnRetry(func(attempt uint64, err error) {
		fmt.Fprintf(progress, app.MsgRetrying,
			attempt, opts.Retry.MaxAttempts, err, opts.Retry.Delay)
	})

	return &Services{
		ResolverService: NewResolverService(serverAdapter, policy, logger),
		ProjectService:  NewProjectService(serverAdapter, policy, logger),
		ExportService:   NewExportService(serverAdapter, policy, opts.Password, progress, logger),
		ArtifactService: NewArtifactService(serverAdapter, storage, opts.Poll, progress, logger),
	}, nil
}

// PollPolicy bounds the artifact wait: at most Attempts queries, Interval
// apart.
type PollPolicy struct {
	Attempts int
	Interval time.Duration
}

// DefaultPollPolicy waits up to five minutes, checking every ten seconds.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{Attempts: 30, Interval: 10 * time.Second}
}

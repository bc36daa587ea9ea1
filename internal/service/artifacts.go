// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/app"
	"github.com/MKhiriev/octo-exporter/internal/interrupt"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/store"
	"github.com/MKhiriev/octo-exporter/internal/validators"
	"github.com/MKhiriev/octo-exporter/models"
)

// waitFunc pauses for d and reports whether the full pause elapsed. It
// returns false as soon as stop is closed.
type waitFunc func(d time.Duration, stop <-chan struct{}) bool

func sleep(d time.Duration, stop <-chan struct{}) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-stop:
		return false
	}
}

type artifactService struct {
	adapter   adapter.ServerAdapter
	storage   store.ArtifactStorage
	validator validators.Validator
	poll      PollPolicy
	wait      waitFunc
	progress  io.Writer
	logger    *logger.Logger
}

// NewArtifactService creates an ArtifactService that queries the task's
// artifacts at most poll.Attempts times, poll.Interval apart, and saves them
// through storage. Poll queries are not retried: the poll loop is their retry.
func NewArtifactService(serverAdapter adapter.ServerAdapter, storage store.ArtifactStorage, poll PollPolicy, progress io.Writer, logger *logger.Logger) ArtifactService {
	if poll.Attempts < 1 {
		poll.Attempts = 1
	}
	if progress == nil {
		progress = io.Discard
	}
	return &artifactService{
		adapter:   serverAdapter,
		storage:   storage,
		validator: validators.NewExportValidator(),
		poll:      poll,
		wait:      sleep,
		progress:  progress,
		logger:    logger,
	}
}

func (a *artifactService) DownloadArtifacts(ctx context.Context, space, task models.Lookup, cancel interrupt.Signal) ([]string, error) {
	if !space.Found || !task.Found {
		return nil, nil
	}
	if cancel == nil {
		cancel = neverCancelled{}
	}

	for attempt := 1; attempt <= a.poll.Attempts; attempt++ {
		artifacts, err := a.adapter.ListArtifacts(ctx, space.ID, task.ID)
		if err != nil {
			if attempt == a.poll.Attempts || ctx.Err() != nil {
				return nil, fmt.Errorf("list artifacts of %s: %w", task.ID, err)
			}
			a.logger.Warn().Err(err).
				Str("task_id", task.ID).
				Int("attempt", attempt).
				Msg("artifact query failed, will poll again")
			artifacts = nil
		}

		if len(artifacts) > 0 {
			return a.saveAll(ctx, space, artifacts)
		}

		if cancel.IsSet() || attempt == a.poll.Attempts {
			break
		}

		fmt.Fprintf(a.progress, app.MsgNoArtifactsYet, a.poll.Interval)
		if !a.wait(a.poll.Interval, cancel.Done()) {
			// one last query runs before the loop stops on the flag
			a.logger.Info().Str("task_id", task.ID).Msg("wait interrupted, checking artifacts once more")
		}
	}

	if cancel.IsSet() {
		a.logger.Info().Str("task_id", task.ID).Msg("stopped waiting for artifacts")
		return nil, ErrCancelled
	}
	return nil, fmt.Errorf("%w: task %s, %d queries", ErrNoArtifacts, task.ID, a.poll.Attempts)
}

// saveAll downloads every artifact in listing order. The first failure stops
// the run; files already saved stay on disk and are returned.
func (a *artifactService) saveAll(ctx context.Context, space models.Lookup, artifacts []models.Artifact) ([]string, error) {
	for i, artifact := range artifacts {
		if err := a.validator.Validate(ctx, artifact); err != nil {
			return nil, fmt.Errorf("%w: artifact at index %d: %v", adapter.ErrMalformedResponse, i, err)
		}
	}

	saved := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		path, err := a.save(ctx, space, artifact)
		if err != nil {
			return saved, err
		}
		saved = append(saved, path)
		fmt.Fprintf(a.progress, app.MsgArtifactSaved, artifact.Filename)
	}
	return saved, nil
}

func (a *artifactService) save(ctx context.Context, space models.Lookup, artifact models.Artifact) (string, error) {
	content, err := a.adapter.OpenArtifactContent(ctx, space.ID, artifact.ID)
	if err != nil {
		return "", fmt.Errorf("download artifact %s: %w", artifact.ID, err)
	}
	defer content.Close()

	path, err := a.storage.Save(ctx, artifact.Filename, content)
	if err != nil {
		return "", fmt.Errorf("save artifact %s as %q: %w", artifact.ID, artifact.Filename, err)
	}

	a.logger.Info().Str("artifact_id", artifact.ID).Str("path", path).Msg("artifact saved")
	return path, nil
}

type neverCancelled struct{}

func (neverCancelled) IsSet() bool { return false }

func (neverCancelled) Done() <-chan struct{} { return nil }

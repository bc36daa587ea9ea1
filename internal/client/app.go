// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/octo-exporter/internal/config"
	"github.com/MKhiriev/octo-exporter/internal/interrupt"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/service"
	"github.com/MKhiriev/octo-exporter/models"
)

// App runs a single export of one space.
type App struct {
	services   *service.Services
	space      string
	exclusions models.ExclusionSet
	cancel     interrupt.Signal
	runID      string
	logger     *logger.Logger
}

// NewApp creates an App exporting cfg.Space. cancel is consulted only while
// waiting for artifacts; a nil cancel never fires.
func NewApp(services *service.Services, cfg config.ExporterExport, cancel interrupt.Signal, runID string, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("nil services")
	}

	return &App{
		services:   services,
		space:      cfg.Space,
		exclusions: models.ParseExclusionSet(cfg.ExcludedProjects),
		cancel:     cancel,
		runID:      runID,
		logger:     logger,
	}, nil
}

// Run implements [Client]. The returned summary reflects every step that
// completed, also when an error is returned.
func (a *App) Run(ctx context.Context) (models.RunSummary, error) {
	summary := models.RunSummary{RunID: a.runID}

	space, err := a.services.ResolverService.ResolveSpace(ctx, a.space)
	if err != nil {
		return summary, fmt.Errorf("resolve space %q: %w", a.space, err)
	}
	summary.Space = space
	if !space.Found {
		return summary, nil
	}
	a.logger.Info().Str("space", a.space).Str("space_id", space.ID).Msg("space resolved")

	projects, err := a.services.ProjectService.ListProjects(ctx, space)
	if err != nil {
		return summary, fmt.Errorf("list projects: %w", err)
	}
	if len(projects) == 0 {
		return summary, nil
	}
	_, excluded := a.exclusions.Apply(projects)
	summary.Projects = models.ResourceIDs(projects)
	summary.Excluded = models.ResourceIDs(excluded)

	task, err := a.services.ExportService.CreateExport(ctx, space, projects, a.exclusions)
	if err != nil {
		return summary, fmt.Errorf("create export: %w", err)
	}
	summary.Task = task
	if !task.Found {
		return summary, nil
	}

	saved, err := a.services.ArtifactService.DownloadArtifacts(ctx, space, task, a.cancel)
	summary.Saved = saved
	if err != nil {
		return summary, fmt.Errorf("download artifacts: %w", err)
	}

	a.logger.Info().
		Str("task_id", task.ID).
		Strs("saved", saved).
		Msg("export finished")
	return summary, nil
}

// compile-time interface check
var _ Client = (*App)(nil)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/app"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/retry"
	"github.com/MKhiriev/octo-exporter/internal/validators"
	"github.com/MKhiriev/octo-exporter/models"
)

type exportService struct {
	adapter   adapter.ServerAdapter
	retry     retry.Policy
	validator validators.Validator
	password  string
	progress  io.Writer
	logger    *logger.Logger
}

// NewExportService creates an ExportService. Every export it submits is
// protected with password; raw server responses are echoed to progress.
func NewExportService(serverAdapter adapter.ServerAdapter, policy retry.Policy, password string, progress io.Writer, logger *logger.Logger) ExportService {
	if progress == nil {
		progress = io.Discard
	}
	return &exportService{
		adapter:   serverAdapter,
		retry:     policy,
		validator: validators.NewExportValidator(),
		password:  password,
		progress:  progress,
		logger:    logger,
	}
}

func (e *exportService) CreateExport(ctx context.Context, space models.Lookup, projects []models.Resource, exclusions models.ExclusionSet) (models.Lookup, error) {
	if !space.Found || len(projects) == 0 {
		return models.NotFound(), nil
	}

	included, excluded := exclusions.Apply(projects)
	for _, p := range excluded {
		e.logger.Info().Str("project_id", p.ID).Str("project", p.Name).Msg("project excluded from export")
	}
	if len(included) == 0 {
		e.logger.Warn().
			Str("space_id", space.ID).
			Int("excluded", len(excluded)).
			Msgf(app.MsgEverythingExcluded, space.ID)
		return models.NotFound(), nil
	}

	req := models.ExportRequest{
		IncludedProjectIDs: models.ResourceIDs(included),
		Password:           models.NewSensitiveValue(e.password),
	}
	if err := e.validator.Validate(ctx, req); err != nil {
		return models.NotFound(), fmt.Errorf("invalid export request: %w", err)
	}

	var resp models.ExportResponse
	err := e.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		resp, err = e.adapter.CreateExport(ctx, space.ID, req)
		if resp.Raw != "" {
			fmt.Fprintln(e.progress, resp.Raw)
		}
		return permanentIfMalformed(err)
	})
	if err != nil {
		return models.NotFound(), fmt.Errorf("create export in %s: %w", space.ID, err)
	}

	e.logger.Info().
		Str("space_id", space.ID).
		Str("task_id", resp.TaskID).
		Int("projects", len(included)).
		Msg("export task created")
	return models.Found(resp.TaskID), nil
}

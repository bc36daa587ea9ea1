// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/app"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/retry"
	"github.com/MKhiriev/octo-exporter/internal/validators"
	"github.com/MKhiriev/octo-exporter/models"
)

type projectService struct {
	adapter   adapter.ServerAdapter
	retry     retry.Policy
	validator validators.Validator
	logger    *logger.Logger
}

// NewProjectService creates a ProjectService that retries the listing with
// policy.
func NewProjectService(serverAdapter adapter.ServerAdapter, policy retry.Policy, logger *logger.Logger) ProjectService {
	return &projectService{
		adapter:   serverAdapter,
		retry:     policy,
		validator: validators.NewExportValidator(),
		logger:    logger,
	}
}

func (p *projectService) ListProjects(ctx context.Context, space models.Lookup) ([]models.Resource, error) {
	if !space.Found {
		return nil, nil
	}

	var projects []models.Resource
	err := p.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		projects, err = p.adapter.ListProjects(ctx, space.ID)
		return permanentIfMalformed(err)
	})
	if err != nil {
		return nil, fmt.Errorf("list projects of %s: %w", space.ID, err)
	}

	for i, project := range projects {
		if err = p.validator.Validate(ctx, project); err != nil {
			return nil, fmt.Errorf("%w: project at index %d: %v", adapter.ErrMalformedResponse, i, err)
		}
	}

	if len(projects) == 0 {
		p.logger.Warn().Str("space_id", space.ID).Msgf(app.MsgSpaceHasNoProjects, space.ID)
		return nil, nil
	}
	return projects, nil
}

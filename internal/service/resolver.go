// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/octo-exporter/internal/adapter"
	"github.com/MKhiriev/octo-exporter/internal/app"
	"github.com/MKhiriev/octo-exporter/internal/logger"
	"github.com/MKhiriev/octo-exporter/internal/retry"
	"github.com/MKhiriev/octo-exporter/internal/validators"
	"github.com/MKhiriev/octo-exporter/models"
)

type resolverService struct {
	adapter   adapter.ServerAdapter
	retry     retry.Policy
	validator validators.Validator
	logger    *logger.Logger
}

// NewResolverService creates a ResolverService that retries every listing
// with policy.
func NewResolverService(serverAdapter adapter.ServerAdapter, policy retry.Policy, logger *logger.Logger) ResolverService {
	return &resolverService{
		adapter:   serverAdapter,
		retry:     policy,
		validator: validators.NewExportValidator(),
		logger:    logger,
	}
}

func (r *resolverService) ResolveSpace(ctx context.Context, name string) (models.Lookup, error) {
	target := strings.TrimSpace(name)
	if target == "" {
		r.logger.Warn().Msg("The space name is empty.")
		return models.NotFound(), nil
	}

	var items []models.Resource
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = r.adapter.ListSpaces(ctx, target)
		return permanentIfMalformed(err)
	})
	if err != nil {
		return models.NotFound(), fmt.Errorf("list spaces: %w", err)
	}

	if found, ok := exactMatch(items, target); ok {
		return r.found(ctx, found)
	}

	r.logger.Warn().Str("space", target).Msgf(app.MsgSpaceNotFound, target)
	return models.NotFound(), nil
}

func (r *resolverService) ResolveResource(ctx context.Context, space models.Lookup, resourceType, name string) (models.Lookup, error) {
	if !space.Found {
		return models.NotFound(), nil
	}

	target := strings.TrimSpace(name)
	if target == "" {
		r.logger.Warn().Str("type", resourceType).Msg("The resource name is empty.")
		return models.NotFound(), nil
	}

	var items []models.Resource
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		items, err = r.adapter.ListResources(ctx, space.ID, resourceType, target)
		return permanentIfMalformed(err)
	})
	if err != nil {
		return models.NotFound(), fmt.Errorf("list %s: %w", resourceType, err)
	}

	if found, ok := exactMatch(items, target); ok {
		return r.found(ctx, found)
	}

	r.logger.Warn().
		Str("space_id", space.ID).
		Str("type", resourceType).
		Str("name", target).
		Msgf(app.MsgResourceNotFound, target, space.ID)
	return models.NotFound(), nil
}

func (r *resolverService) GetResource(ctx context.Context, space models.Lookup, resourceType, resourceID string) (json.RawMessage, error) {
	if !space.Found {
		return nil, nil
	}

	var doc json.RawMessage
	err := r.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		doc, err = r.adapter.GetResource(ctx, space.ID, resourceType, resourceID)
		return permanentIfMalformed(err)
	})
	if err != nil {
		return nil, fmt.Errorf("get %s %s: %w", resourceType, resourceID, err)
	}
	return doc, nil
}

func (r *resolverService) found(ctx context.Context, resource models.Resource) (models.Lookup, error) {
	if err := r.validator.Validate(ctx, resource); err != nil {
		return models.NotFound(), fmt.Errorf("%w: %q: %v", adapter.ErrMalformedResponse, resource.Name, err)
	}
	return models.Found(resource.ID), nil
}

// exactMatch returns the first resource, in server order, whose name equals
// target. The server-side partial filter is never trusted on its own.
func exactMatch(items []models.Resource, target string) (models.Resource, bool) {
	for _, item := range items {
		if item.Name == target {
			return item, true
		}
	}
	return models.Resource{}, false
}

// permanentIfMalformed stops retrying once the server answered with a body
// the client cannot decode.
func permanentIfMalformed(err error) error {
	if errors.Is(err, adapter.ErrMalformedResponse) {
		return retry.Permanent(err)
	}
	return err
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/octo-exporter/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldID targets the server-assigned identifier of a resource or artifact.
	FieldID = "id"

	// FieldFilename targets the name an artifact is saved under.
	FieldFilename = "filename"

	// FieldIncludedProjectIDs targets the project list of an export request.
	FieldIncludedProjectIDs = "included_project_ids"

	// FieldPassword targets the archive password of an export request.
	FieldPassword = "password"
)

type ExportValidator struct {
}

func NewExportValidator() Validator {
	return &ExportValidator{}
}

func (v *ExportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		return v.validateExportRequest(ctx, *value, fields...)

	case models.Artifact:
		return v.validateArtifact(ctx, value, fields...)
	case *models.Artifact:
		return v.validateArtifact(ctx, *value, fields...)

	case models.Resource:
		return v.validateResource(ctx, value, fields...)
	case *models.Resource:
		return v.validateResource(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ExportValidator) validateExportRequest(_ context.Context, request models.ExportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIncludedProjectIDs, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIncludedProjectIDs:
			if len(request.IncludedProjectIDs) == 0 {
				return ErrEmptyProjectIDs
			}
			seen := make(map[string]struct{}, len(request.IncludedProjectIDs))
			for i, id := range request.IncludedProjectIDs {
				if strings.TrimSpace(id) == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidProjectID)
				}
				if _, dup := seen[id]; dup {
					return fmt.Errorf("validation error at index %d: %w: %s", i, ErrDuplicateProject, id)
				}
				seen[id] = struct{}{}
			}
		case FieldPassword:
			if !request.Password.HasValue || request.Password.NewValue == "" {
				return ErrPasswordNotSet
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ExportValidator) validateArtifact(_ context.Context, artifact models.Artifact, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldFilename}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(artifact.ID) == "" {
				return ErrEmptyID
			}
		case FieldFilename:
			if strings.TrimSpace(artifact.Filename) == "" {
				return ErrEmptyFilename
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ExportValidator) validateResource(_ context.Context, resource models.Resource, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(resource.ID) == "" {
				return ErrEmptyID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

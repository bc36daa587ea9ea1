// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the export pipeline steps on top of
// [adapter.ServerAdapter]: name resolution, project enumeration, export task
// submission and artifact polling/downloading.
//
// Absence is a value, not an error: every step takes and returns
// [models.Lookup] and turns an absent input into a no-op without touching
// the network.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/octo-exporter/internal/interrupt"
	"github.com/MKhiriev/octo-exporter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// ResolverService maps human-readable names to server identifiers.
type ResolverService interface {
	// ResolveSpace returns the id of the first space, in server order, whose
	// name equals the trimmed name exactly. No match yields a diagnostic and
	// an absent Lookup, not an error.
	ResolveSpace(ctx context.Context, name string) (models.Lookup, error)

	// ResolveResource does the same inside space for the resourceType
	// collection (e.g. "environments"). An absent space yields an absent
	// Lookup without a request.
	ResolveResource(ctx context.Context, space models.Lookup, resourceType, name string) (models.Lookup, error)

	// GetResource fetches the raw JSON document of one resource. An absent
	// space yields nil without a request.
	GetResource(ctx context.Context, space models.Lookup, resourceType, resourceID string) (json.RawMessage, error)
}

// ProjectService enumerates the projects of a space.
type ProjectService interface {
	// ListProjects returns every project of space in server order. An absent
	// space or an empty space yields nil; the latter with a diagnostic.
	ListProjects(ctx context.Context, space models.Lookup) ([]models.Resource, error)
}

// ExportService submits export tasks.
type ExportService interface {
	// CreateExport submits one password-protected export of projects minus
	// exclusions and returns the task id. Nothing is submitted, and an absent
	// Lookup is returned, when space is absent or no project remains.
	CreateExport(ctx context.Context, space models.Lookup, projects []models.Resource, exclusions models.ExclusionSet) (models.Lookup, error)
}

// ArtifactService waits for a task's artifacts and downloads them.
type ArtifactService interface {
	// DownloadArtifacts polls for the artifacts of task until at least one
	// appears, the poll bound is reached, or cancel is set, and saves every
	// artifact found. It returns the paths written.
	// cancel is read between poll iterations only.
	DownloadArtifacts(ctx context.Context, space, task models.Lookup, cancel interrupt.Signal) ([]string, error)
}

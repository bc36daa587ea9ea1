// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the deployment
// server's REST API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPServerAdapter]) that attaches the API key header to every request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrMalformedResponse] for an undecodable 2xx body).
package adapter

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MKhiriev/octo-exporter/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the calls the exporter makes against the server.
// Implementations perform exactly one request per call; retrying is up to
// the caller.
type ServerAdapter interface {
	// ListSpaces returns the spaces whose name contains partialName, in
	// server order. GET /api/spaces?partialName=..&take=1000
	ListSpaces(ctx context.Context, partialName string) ([]models.Resource, error)

	// ListResources returns the resources of resourceType inside spaceID
	// whose name contains partialName.
	// GET /api/{spaceId}/{resourceType}?partialName=..&take=1000
	ListResources(ctx context.Context, spaceID, resourceType, partialName string) ([]models.Resource, error)

	// GetResource returns the raw JSON document of a single resource.
	// GET /api/{spaceId}/{resourceType}/{resourceId}
	GetResource(ctx context.Context, spaceID, resourceType, resourceID string) (json.RawMessage, error)

	// ListProjects returns every project in spaceID, in server order.
	// GET /api/{spaceId}/projects?take=1000
	ListProjects(ctx context.Context, spaceID string) ([]models.Resource, error)

	// CreateExport submits an export task and returns its TaskId together
	// with the raw response text. A 2xx response without TaskId yields
	// [ErrMalformedResponse].
	// POST /api/{spaceId}/projects/import-export/export
	CreateExport(ctx context.Context, spaceID string, req models.ExportRequest) (models.ExportResponse, error)

	// ListArtifacts returns the artifacts attached to taskID.
	// GET /api/{spaceId}/artifacts?regarding={taskId}
	ListArtifacts(ctx context.Context, spaceID, taskID string) ([]models.Artifact, error)

	// OpenArtifactContent starts streaming an artifact's content, following
	// redirects. The caller must close the returned reader. A non-2xx status
	// is returned as an error before any content is read.
	// GET /api/{spaceId}/artifacts/{artifactId}/content
	OpenArtifactContent(ctx context.Context, spaceID, artifactID string) (io.ReadCloser, error)
}

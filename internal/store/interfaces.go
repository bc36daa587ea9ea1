// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists downloaded artifacts on the local file system.
package store

import (
	"context"
	"io"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/artifact_storage_mock.go -package=mock

// ArtifactStorage writes artifact content to local files.
type ArtifactStorage interface {
	// Save streams content into a file named after filename, overwriting any
	// existing file of that name, and returns the path written. The final
	// file only appears once the whole stream has been written.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}

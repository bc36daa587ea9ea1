// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/octo-exporter/internal/logger"
)

// artifactFileStorage is the file-system implementation of [ArtifactStorage].
// Files land in dir under the base name reported by the server.
type artifactFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewArtifactFileStorage constructs an [ArtifactStorage] writing into dir.
// An empty dir means the working directory. The directory is created if it
// does not exist.
func NewArtifactFileStorage(dir string, logger *logger.Logger) (ArtifactStorage, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	return &artifactFileStorage{dir: dir, logger: logger}, nil
}

// Save implements [ArtifactStorage]. Content is written to a temporary file
// next to the target and renamed over it once fully written, so a failed
// stream never leaves a truncated file under the final name.
func (s *artifactFileStorage) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	name, err := sanitizeFilename(filename)
	if err != nil {
		return "", err
	}
	target := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.part")
	if err != nil {
		return "", fmt.Errorf("%w: create temp file: %v", ErrArtifactNotSaved, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	written, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: content})
	if err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: write %s: %v", ErrArtifactNotSaved, name, err)
	}
	if err = tmp.Chmod(artifactFileMode(target)); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: chmod %s: %v", ErrArtifactNotSaved, name, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %v", ErrArtifactNotSaved, name, err)
	}
	if err = os.Rename(tmpName, target); err != nil {
		return "", fmt.Errorf("%w: rename to %s: %v", ErrArtifactNotSaved, target, err)
	}

	s.logger.Debug().Str("path", target).Int64("bytes", written).Msg("artifact saved")
	return target, nil
}

// artifactFileMode keeps the permissions of a file being replaced. New files
// get the usual 0644 instead of the 0600 a temp file is created with.
func artifactFileMode(target string) os.FileMode {
	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0o644
}

// sanitizeFilename keeps only the last path element of a server-reported
// name so that artifacts cannot be written outside the output directory.
func sanitizeFilename(filename string) (string, error) {
	name := strings.TrimSpace(strings.ReplaceAll(filename, `\`, "/"))
	name = filepath.Base(filepath.FromSlash(name))
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return name, nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

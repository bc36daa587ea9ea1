// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrInvalidFilename is returned when the server reports a file name that
	// cannot be used as a local file name (empty, "." or "..").
	ErrInvalidFilename = errors.New("invalid artifact file name")

	// ErrArtifactNotSaved wraps I/O failures while writing an artifact.
	ErrArtifactNotSaved = errors.New("artifact was not saved")
)

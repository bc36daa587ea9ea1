// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoArtifacts is returned when the poll bound is reached and the task
	// has produced no artifact.
	ErrNoArtifacts = errors.New("export task produced no artifacts in time")

	// ErrCancelled is returned when the operator stopped the wait before any
	// artifact was found.
	ErrCancelled = errors.New("waiting for artifacts was cancelled")
)

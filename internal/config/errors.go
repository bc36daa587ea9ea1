// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ExporterConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing server URL or API key.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidExportConfigs indicates a missing space name or archive password.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidPollConfigs indicates a non-positive poll bound or interval.
	ErrInvalidPollConfigs = errors.New("invalid poll configuration")
	// ErrInvalidRetryConfigs indicates fewer than one attempt or a negative delay.
	ErrInvalidRetryConfigs = errors.New("invalid retry configuration")
	// ErrInvalidFlags indicates positional arguments or otherwise unusable flags.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)

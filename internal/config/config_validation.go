// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the invariants the exporter relies on. Every error wraps
// one of the sentinel errors from errors.go.
func (cfg *ExporterConfig) validate() error {
	if strings.TrimSpace(cfg.Server.URL) == "" {
		return fmt.Errorf("%w: server url is required (-octopusUrl / OCTOPUS_URL)", ErrInvalidServerConfigs)
	}
	if strings.TrimSpace(cfg.Server.APIKey) == "" {
		return fmt.Errorf("%w: api key is required (-octopusApiKey / OCTOPUS_API_KEY)", ErrInvalidServerConfigs)
	}

	if strings.TrimSpace(cfg.Export.Space) == "" {
		return fmt.Errorf("%w: space is required (-octopusSpace / EXPORT_SPACE)", ErrInvalidExportConfigs)
	}
	if cfg.Export.Password == "" {
		return fmt.Errorf("%w: archive password is required (-exportPassword / EXPORT_PASSWORD)", ErrInvalidExportConfigs)
	}

	if cfg.Poll.Attempts < 1 || cfg.Poll.Interval <= 0 {
		return ErrInvalidPollConfigs
	}

	if cfg.Retry.Attempts < 1 || cfg.Retry.Delay < 0 {
		return ErrInvalidRetryConfigs
	}

	return nil
}

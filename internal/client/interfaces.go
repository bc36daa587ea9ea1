// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/octo-exporter/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run performs one export and blocks until it finishes.
	Run(ctx context.Context) (models.RunSummary, error)
}

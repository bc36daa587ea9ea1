// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportRequest is the body of POST /api/{spaceId}/projects/import-export/export.
//
// Serialising it through encoding/json guarantees that project ids and the
// password are quoted and escaped correctly.
type ExportRequest struct {
	// IncludedProjectIDs lists every project that goes into the archive.
	IncludedProjectIDs []string `json:"IncludedProjectIds"`

	// Password protects the produced archive. It is always set.
	Password SensitiveValue `json:"Password"`
}

// SensitiveValue is the server's envelope for write-only secrets.
type SensitiveValue struct {
	HasValue bool   `json:"HasValue"`
	NewValue string `json:"NewValue"`
}

// NewSensitiveValue wraps value in a [SensitiveValue] with HasValue set.
func NewSensitiveValue(value string) SensitiveValue {
	return SensitiveValue{HasValue: true, NewValue: value}
}

// ExportResponse is the part of the export response the client relies on.
type ExportResponse struct {
	// TaskID identifies the server-side task producing the archive.
	TaskID string `json:"TaskId"`

	// Raw is the response body as received, echoed to the operator.
	Raw string `json:"-"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RunSummary describes what a single export run did. Fields stay empty for
// the steps that were skipped because an earlier step found nothing.
type RunSummary struct {
	RunID    string
	Space    Lookup
	Task     Lookup
	Projects []string
	Excluded []string
	Saved    []string
}

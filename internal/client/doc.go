// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the exporter application runtime.
//
// It composes the pipeline steps from the service package into one export
// run: resolve the space, list its projects, submit the export, then wait for
// and download the artifacts. Each step receives the previous step's result
// and is a no-op when that result is absent.
package client

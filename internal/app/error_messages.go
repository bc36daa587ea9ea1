// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message formats used across
// the exporter services.
//
// Msg* constants are operator-facing lines. Progress lines go to standard
// output; diagnostics about absent inputs go to the log on standard error.
// Keeping them in one place keeps the wording consistent between the steps.
package app

const (
	// MsgSpaceNotFound is logged when no space carries the requested name.
	MsgSpaceNotFound = "The space called %s could not be found."

	// MsgResourceNotFound is logged when no resource of the given collection
	// carries the requested name.
	MsgResourceNotFound = "The resource called %s could not be found in space %s."

	// MsgSpaceHasNoProjects is logged when a resolved space is empty.
	MsgSpaceHasNoProjects = "The space %s has no projects."

	// MsgEverythingExcluded is logged when exclusions leave nothing to export.
	MsgEverythingExcluded = "Every project of %s is excluded, nothing to export."

	// MsgNoArtifactsYet is printed before each pause of the artifact poll.
	MsgNoArtifactsYet = "No artifacts found - sleeping for %s before trying again\n"

	// MsgArtifactSaved is printed after an artifact is written to disk.
	MsgArtifactSaved = "Saved %s\n"

	// MsgRetrying is printed before a failed call is attempted again.
	MsgRetrying = "Request failed (attempt %d of %d): %v - retrying in %s\n"

	// MsgCancelAck is printed once when the operator interrupts the run.
	MsgCancelAck = "export was cancelled, finishing current operation"
)

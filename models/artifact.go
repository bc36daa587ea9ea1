// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Artifact is a file produced by a server task.
type Artifact struct {
	// ID is the artifact identifier used to fetch its content.
	ID string `json:"Id"`

	// Filename is the name the server reports for the file. The artifact is
	// saved locally under this name.
	Filename string `json:"Filename"`
}

// ArtifactCollection is the listing envelope returned by
// GET /api/{spaceId}/artifacts.
type ArtifactCollection struct {
	Items []Artifact `json:"Items"`
}

// ArtifactQuery selects the artifacts attached to a task.
type ArtifactQuery struct {
	Regarding string `url:"regarding"`
}

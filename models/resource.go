// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Well-known resource collections inside a space. Any other collection name
// accepted by the server can be passed to the resolver as well.
const (
	ResourceTypeProjects     = "projects"
	ResourceTypeEnvironments = "environments"
	ResourceTypeTenants      = "tenants"
	ResourceTypeLifecycles   = "lifecycles"
)

// DefaultTake is the page size sent with every listing query. It is large
// enough that realistic catalogs fit in a single page.
const DefaultTake = 1000

// Resource is any named entity returned by the server: a space, a project,
// an environment and so on.
type Resource struct {
	// ID is the opaque server-assigned identifier (e.g. "Spaces-1").
	ID string `json:"Id"`

	// Name is the human-readable name the operator refers to.
	Name string `json:"Name"`
}

// ResourceCollection is the paged envelope the server wraps around listings.
type ResourceCollection struct {
	Items []Resource `json:"Items"`

	// TotalResults is informational only; the client never requests a second page.
	TotalResults int `json:"TotalResults,omitempty"`
}

// ListQuery holds the query parameters of a filtered listing request.
type ListQuery struct {
	// PartialName narrows the listing server-side. It is a performance
	// filter only; exact matching happens on the client.
	PartialName string `url:"partialName,omitempty"`

	// Take is the page size.
	Take int `url:"take"`
}

// ResourceIDs returns the identifiers of resources in their original order.
func ResourceIDs(resources []Resource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	return ids
}

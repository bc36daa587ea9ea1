// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Lookup is the outcome of resolving something by name (a space, a resource
// inside a space) or of creating something that yields an identifier (an
// export task).
//
// A zero Lookup means "not found". Callers must branch on Found before using
// ID; every pipeline step treats an absent Lookup as "nothing to do".
type Lookup struct {
	ID    string
	Found bool
}

// Found returns a Lookup holding id.
func Found(id string) Lookup {
	return Lookup{ID: id, Found: true}
}

// NotFound returns an absent Lookup.
func NotFound() Lookup {
	return Lookup{}
}

// String returns the identifier, or "<none>" for an absent Lookup.
func (l Lookup) String() string {
	if !l.Found {
		return "<none>"
	}
	return l.ID
}

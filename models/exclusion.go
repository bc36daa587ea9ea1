// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// ExclusionSet holds project ids or names that must be left out of an export.
// The zero value excludes nothing.
type ExclusionSet struct {
	entries map[string]struct{}
}

// ParseExclusionSet builds an [ExclusionSet] from a comma-separated list.
// Entries are trimmed and empty entries are dropped.
func ParseExclusionSet(list string) ExclusionSet {
	set := ExclusionSet{entries: make(map[string]struct{})}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		set.entries[entry] = struct{}{}
	}
	return set
}

// Len returns the number of distinct entries.
func (s ExclusionSet) Len() int {
	return len(s.entries)
}

// Excludes reports whether r matches an entry by trimmed id or trimmed name.
// Matching is literal and case-sensitive.
func (s ExclusionSet) Excludes(r Resource) bool {
	if len(s.entries) == 0 {
		return false
	}
	if _, ok := s.entries[strings.TrimSpace(r.ID)]; ok {
		return true
	}
	if name := strings.TrimSpace(r.Name); name != "" {
		_, ok := s.entries[name]
		return ok
	}
	return false
}

// Apply splits resources into the ones kept and the ones excluded,
// preserving order in both.
func (s ExclusionSet) Apply(resources []Resource) (included, excluded []Resource) {
	included = make([]Resource, 0, len(resources))
	for _, r := range resources {
		if s.Excludes(r) {
			excluded = append(excluded, r)
			continue
		}
		included = append(included, r)
	}
	return included, excluded
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college

import (
	"strconv"
	"strings"

	"github.com/collegesathi/api/pkg/slice"
)

// # Discovery Engine
//
// Filtering is conjunctive across the three criteria (query AND faculties
// AND affiliations) and disjunctive within each: a college passes the
// faculty clause by offering a program in ANY selected faculty.
//
// Apply is a pure function over an ordered snapshot. It never reorders:
// results keep the relative order of the input, so repeated application of
// the same filter is idempotent and an empty filter is the identity.

/*
Apply resolves a filter against an ordered collection of colleges.

Parameters:
  - colleges: The full ordered collection, typically newest first.
  - filter: The criteria; a zero filter returns the input unchanged.

Returns:
  - []College: The matching subset in input order. Never nil.
*/
func Apply(colleges []College, filter Filter) []College {
	if filter.IsZero() {
		if colleges == nil {
			return []College{}
		}
		return colleges
	}
	matched := slice.Filter(colleges, func(candidate College) bool {
		return Matches(candidate, filter)
	})
	if matched == nil {
		return []College{}
	}
	return matched
}

// Matches reports whether a single college satisfies every clause of the
// filter. Empty clauses are vacuously true.
func Matches(candidate College, filter Filter) bool {
	return matchesQuery(candidate, filter.Query) &&
		matchesFaculties(candidate, filter.Faculties) &&
		matchesAffiliations(candidate, filter.Affiliations)
}

// matchesQuery checks the free-text term as a case-insensitive substring
// across every searchable surface of the record.
func matchesQuery(candidate College, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	if containsFold(candidate.Name, query) ||
		containsFold(candidate.Location.City, query) ||
		containsFold(candidate.Location.District, query) ||
		containsFold(candidate.About, query) ||
		containsFold(string(candidate.Affiliation), query) {
		return true
	}

	for _, program := range candidate.Programs {
		if containsFold(program.Name, query) ||
			containsFold(string(program.Faculty), query) {
			return true
		}
		// Numeric fees are searchable through their decimal rendering, so a
		// query like "850000" finds a program priced at that amount.
		if program.HasNumericFee() &&
			strings.Contains(strconv.FormatFloat(program.Fee, 'f', -1, 64), query) {
			return true
		}
	}

	for _, facility := range candidate.Facilities {
		if containsFold(facility.Name, query) {
			return true
		}
	}
	return false
}

// matchesFaculties passes when any program belongs to any selected faculty.
func matchesFaculties(candidate College, faculties []Faculty) bool {
	if len(faculties) == 0 {
		return true
	}
	for _, program := range candidate.Programs {
		for _, faculty := range faculties {
			if program.Faculty == faculty {
				return true
			}
		}
	}
	return false
}

func matchesAffiliations(candidate College, affiliations []Affiliation) bool {
	if len(affiliations) == 0 {
		return true
	}
	for _, affiliation := range affiliations {
		if candidate.Affiliation == affiliation {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive substring check. The needle must
// already be lowercased by the caller.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

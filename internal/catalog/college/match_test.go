// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/catalog/college"
)

// ids projects a result set onto its college IDs for order-sensitive asserts.
func ids(colleges []college.College) []string {
	out := make([]string, 0, len(colleges))
	for _, c := range colleges {
		out = append(out, c.ID)
	}
	return out
}

/*
TestApply_EmptyFilterIsIdentity verifies that a zero filter returns the
collection unchanged, in its original order.
*/
func TestApply_EmptyFilterIsIdentity(t *testing.T) {
	snapshot := sampleColleges()

	got := college.Apply(snapshot, college.Filter{})

	assert.Equal(t, ids(snapshot), ids(got))
}

/*
TestApply_Idempotent verifies that re-applying the same filter to its own
output changes nothing.
*/
func TestApply_Idempotent(t *testing.T) {
	snapshot := sampleColleges()
	filter := college.Filter{Query: "engineering"}

	once := college.Apply(snapshot, filter)
	twice := college.Apply(once, filter)

	assert.Equal(t, ids(once), ids(twice))
}

/*
TestApply_QueryMatching covers the free-text search surfaces: names,
locations, descriptions, affiliations, programs, faculties, facilities,
and decimal fee renderings.
*/
func TestApply_QueryMatching(t *testing.T) {
	snapshot := sampleColleges()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"college_name", "pulchowk", []string{"c-ioe"}},
		{"city_substring", "dhuli", []string{"c-kusom"}},
		{"district", "sunsari", []string{"c-bpkihs"}},
		{"about_text", "oldest engineering", []string{"c-ioe"}},
		{"affiliation_code", "ku", []string{"c-kusom"}},
		{"university_word", "university", []string{"c-ioe", "c-kusom"}},
		{"program_name", "mbbs", []string{"c-bpkihs"}},
		{"faculty_name", "management", []string{"c-kusom"}},
		{"facility_name", "teaching hospital", []string{"c-bpkihs"}},
		{"numeric_fee_digits", "850000", []string{"c-ioe"}},
		{"no_match", "bhairahawa", []string{}},
		{"blank_matches_all", "   ", []string{"c-ioe", "c-kusom", "c-bpkihs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := college.Apply(snapshot, college.Filter{Query: tt.query})
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

/*
TestApply_CaseInsensitive verifies that query casing never changes the
result set.
*/
func TestApply_CaseInsensitive(t *testing.T) {
	snapshot := sampleColleges()

	lower := college.Apply(snapshot, college.Filter{Query: "engineer"})
	upper := college.Apply(snapshot, college.Filter{Query: "ENGINEER"})
	mixed := college.Apply(snapshot, college.Filter{Query: "EnGiNeEr"})

	require.NotEmpty(t, lower)
	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, ids(lower), ids(mixed))
}

/*
TestApply_CategoricalFilters verifies the faculty (any program matches) and
affiliation clauses, each disjunctive within itself.
*/
func TestApply_CategoricalFilters(t *testing.T) {
	snapshot := sampleColleges()

	tests := []struct {
		name    string
		filter  college.Filter
		wantIDs []string
	}{
		{
			name:    "single_faculty",
			filter:  college.Filter{Faculties: []college.Faculty{college.FacultyEngineering}},
			wantIDs: []string{"c-ioe"},
		},
		{
			name:    "multiple_faculties_union",
			filter:  college.Filter{Faculties: []college.Faculty{college.FacultyEngineering, college.FacultyMedical}},
			wantIDs: []string{"c-ioe", "c-bpkihs"},
		},
		{
			name:    "single_affiliation",
			filter:  college.Filter{Affiliations: []college.Affiliation{college.AffiliationKU}},
			wantIDs: []string{"c-kusom"},
		},
		{
			name:    "unknown_faculty_matches_nothing",
			filter:  college.Filter{Faculties: []college.Faculty{"Astrology"}},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := college.Apply(snapshot, tt.filter)
			assert.Equal(t, tt.wantIDs, ids(got))
		})
	}
}

/*
TestApply_ConjunctiveNarrowing verifies that combining criteria can only
shrink the result set, never widen it.
*/
func TestApply_ConjunctiveNarrowing(t *testing.T) {
	snapshot := sampleColleges()

	queryOnly := college.Apply(snapshot, college.Filter{Query: "nepal"})
	combined := college.Apply(snapshot, college.Filter{
		Query:     "nepal",
		Faculties: []college.Faculty{college.FacultyEngineering},
	})

	assert.LessOrEqual(t, len(combined), len(queryOnly))
	for _, match := range combined {
		assert.Contains(t, ids(queryOnly), match.ID)
	}

	// conflicting clauses empty the result without error
	contradiction := college.Apply(snapshot, college.Filter{
		Query:        "pulchowk",
		Affiliations: []college.Affiliation{college.AffiliationKU},
	})
	assert.Empty(t, contradiction)
}

/*
TestApply_NilSnapshot verifies nil-safety of the engine entry point.
*/
func TestApply_NilSnapshot(t *testing.T) {
	assert.NotNil(t, college.Apply(nil, college.Filter{}))
	assert.NotNil(t, college.Apply(nil, college.Filter{Query: "x"}))
}

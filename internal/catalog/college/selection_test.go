// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/catalog/college"
)

/*
TestSelection_Toggle verifies that toggling selects on first call and
deselects on the second.
*/
func TestSelection_Toggle(t *testing.T) {
	selection := &college.Selection{}

	selection.ToggleFaculty(college.FacultyEngineering)
	selection.ToggleFaculty(college.FacultyMedical)
	assert.ElementsMatch(t,
		[]college.Faculty{college.FacultyEngineering, college.FacultyMedical},
		selection.Filter().Faculties,
	)

	selection.ToggleFaculty(college.FacultyEngineering)
	assert.Equal(t, []college.Faculty{college.FacultyMedical}, selection.Filter().Faculties)

	selection.ToggleAffiliation(college.AffiliationTU)
	selection.ToggleAffiliation(college.AffiliationTU)
	assert.Empty(t, selection.Filter().Affiliations)
}

/*
TestSelection_ClearFiltersKeepsQuery verifies that clearing drops the chips
but leaves the search term exactly as typed.
*/
func TestSelection_ClearFiltersKeepsQuery(t *testing.T) {
	selection := &college.Selection{}
	selection.SetQuery("  Engineering in KTM ")
	selection.ToggleFaculty(college.FacultyEngineering)
	selection.ToggleAffiliation(college.AffiliationTU)

	selection.ClearFilters()

	filter := selection.Filter()
	assert.Equal(t, "  Engineering in KTM ", filter.Query)
	assert.Empty(t, filter.Faculties)
	assert.Empty(t, filter.Affiliations)
}

/*
TestSelection_FilterSnapshotIsolation verifies that a snapshot is not
aliased to the live selection state.
*/
func TestSelection_FilterSnapshotIsolation(t *testing.T) {
	selection := &college.Selection{}
	selection.ToggleFaculty(college.FacultyLaw)

	snapshot := selection.Filter()
	selection.ToggleFaculty(college.FacultyScience)

	assert.Equal(t, []college.Faculty{college.FacultyLaw}, snapshot.Faculties)
}

/*
TestSelection_Apply walks a realistic browsing session against the sample
directory end to end.
*/
func TestSelection_Apply(t *testing.T) {
	snapshot := sampleColleges()
	selection := &college.Selection{}

	// untouched selection shows the full directory
	assert.Len(t, selection.Apply(snapshot), 3)

	// narrow by faculty chips
	selection.ToggleFaculty(college.FacultyManagement)
	selection.ToggleFaculty(college.FacultyMedical)
	assert.Equal(t, []string{"c-kusom", "c-bpkihs"}, ids(selection.Apply(snapshot)))

	// add a search term on top
	selection.SetQuery("dharan")
	assert.Equal(t, []string{"c-bpkihs"}, ids(selection.Apply(snapshot)))

	// clearing chips keeps the query active
	selection.ClearFilters()
	results := selection.Apply(snapshot)
	require.Len(t, results, 1)
	assert.Equal(t, "c-bpkihs", results[0].ID)
}

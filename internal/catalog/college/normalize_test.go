// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/catalog/college"
)

/*
TestNormalize_Location verifies city/district resolution across schema
revisions: structured columns win; legacy freeform addresses split on the
first comma only.
*/
func TestNormalize_Location(t *testing.T) {
	tests := []struct {
		name         string
		record       college.RawRecord
		wantCity     string
		wantDistrict string
	}{
		{
			name:         "structured_columns_win",
			record:       college.RawRecord{City: "Dhulikhel", District: "Kavre", Address: "ignored, text"},
			wantCity:     "Dhulikhel",
			wantDistrict: "Kavre",
		},
		{
			name:         "legacy_address_split",
			record:       college.RawRecord{Address: "Dharan, Sunsari"},
			wantCity:     "Dharan",
			wantDistrict: "Sunsari",
		},
		{
			name:         "address_without_comma",
			record:       college.RawRecord{Address: "Dharan"},
			wantCity:     "Dharan",
			wantDistrict: "",
		},
		{
			name:         "split_on_first_comma_only",
			record:       college.RawRecord{Address: "Kathmandu, Ward 5, Bagmati"},
			wantCity:     "Kathmandu",
			wantDistrict: "Ward 5, Bagmati",
		},
		{
			name:         "whitespace_trimmed",
			record:       college.RawRecord{Address: "  Pokhara ,  Kaski "},
			wantCity:     "Pokhara",
			wantDistrict: "Kaski",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := college.Normalize(tt.record)
			assert.Equal(t, tt.wantCity, got.Location.City)
			assert.Equal(t, tt.wantDistrict, got.Location.District)
		})
	}
}

/*
TestNormalize_Programs verifies the program key preferences and the
numeric-versus-display fee split.
*/
func TestNormalize_Programs(t *testing.T) {
	record := college.RawRecord{
		ID: "c-1",
		Programs: []map[string]any{
			{"program_name": "BBA", "name": "legacy ignored", "faculty": "Management", "duration": float64(4), "fees": float64(1200000)},
			{"name": "MBBS", "faculty": "Medical", "duration": float64(5), "fees": "Contact admissions"},
			{"faculty": "Science"},
		},
	}

	got := college.Normalize(record)
	require.Len(t, got.Programs, 3)

	// program_name preferred over legacy name
	assert.Equal(t, "BBA", got.Programs[0].Name)
	assert.Equal(t, college.FacultyManagement, got.Programs[0].Faculty)
	assert.Equal(t, 4, got.Programs[0].Duration)
	assert.Equal(t, float64(1200000), got.Programs[0].Fee)
	assert.True(t, got.Programs[0].HasNumericFee())

	// legacy name fallback, string fee carried verbatim and never parsed
	assert.Equal(t, "MBBS", got.Programs[1].Name)
	assert.Equal(t, "Contact admissions", got.Programs[1].FeeText)
	assert.Zero(t, got.Programs[1].Fee)
	assert.False(t, got.Programs[1].HasNumericFee())

	// missing fields degrade to zero values, never drop the entry
	assert.Empty(t, got.Programs[2].Name)
	assert.Equal(t, "c-1", got.Programs[2].CollegeID)
}

/*
TestNormalize_Facilities verifies the promotion of legacy bare-string
facilities with deterministic synthetic IDs.
*/
func TestNormalize_Facilities(t *testing.T) {
	record := college.RawRecord{
		ID: "c-7",
		Facilities: []any{
			"Hostel",
			"Library",
			map[string]any{"id": "f-9", "facility_name": "WiFi"},
			map[string]any{"name": "Canteen"},
		},
	}

	got := college.Normalize(record)
	require.Len(t, got.Facilities, 4)

	assert.Equal(t, college.Facility{ID: "c-7-facility-0", CollegeID: "c-7", Name: "Hostel"}, got.Facilities[0])
	assert.Equal(t, college.Facility{ID: "c-7-facility-1", CollegeID: "c-7", Name: "Library"}, got.Facilities[1])

	// object form keeps its own id, falls back to name key
	assert.Equal(t, "f-9", got.Facilities[2].ID)
	assert.Equal(t, "WiFi", got.Facilities[2].Name)
	assert.Equal(t, "c-7-facility-3", got.Facilities[3].ID)
	assert.Equal(t, "Canteen", got.Facilities[3].Name)
}

/*
TestNormalize_EmptyCollections verifies that absent collections come back
empty, never nil, so JSON responses render [] instead of null.
*/
func TestNormalize_EmptyCollections(t *testing.T) {
	got := college.Normalize(college.RawRecord{ID: "c-0", Name: "Bare College"})

	require.NotNil(t, got.Programs)
	require.NotNil(t, got.Facilities)
	assert.Empty(t, got.Programs)
	assert.Empty(t, got.Facilities)
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college

import (
	"fmt"
	"strings"
	"time"
)

// # Record Normalization
//
// Stored college rows span several schema revisions. Older rows keep a single
// freeform address string, name programs under "name" instead of
// "program_name", carry fees as display strings, and list facilities as bare
// strings. Normalize maps every known shape onto the canonical [College] so
// the rest of the system only ever sees one shape.
//
// Normalization is total: it never fails. Unknown or missing fields collapse
// to zero values and malformed nested entries are kept in whatever partial
// form can be salvaged rather than failing the whole record.

// RawRecord is one stored college row before normalization. Programs and
// Facilities hold the decoded JSONB payloads, loosely typed because their
// element shape differs across schema revisions.
type RawRecord struct {
	ID          string
	Name        string
	LogoURL     string
	Address     string
	City        string
	District    string
	Affiliation string
	About       string
	Website     string
	Phone       string
	Programs    []map[string]any
	Facilities  []any
	RatingAvg   float64
	RatingCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

/*
Normalize converts a stored row of any known schema revision into the
canonical [College] shape.

Rules applied, in order:
  - Location: structured city/district columns win; otherwise the freeform
    address is split on its first comma into city and district. An address
    with no comma becomes the city with an empty district.
  - Programs: "program_name" is preferred over the legacy "name" key. A
    numeric fee populates Fee; a string fee is carried verbatim in FeeText
    and never parsed.
  - Facilities: bare strings are promoted to [Facility] values with a
    deterministic synthetic ID of the form "<collegeID>-facility-<index>".
  - Absent collections become empty, never nil.

Parameters:
  - record: One stored row, as loaded by the repository.

Returns:
  - College: The canonical record. Never an error; bad data degrades to
    zero values instead of failing the whole listing.
*/
func Normalize(record RawRecord) College {
	normalized := College{
		ID:          record.ID,
		Name:        record.Name,
		LogoURL:     record.LogoURL,
		Location:    normalizeLocation(record),
		Affiliation: Affiliation(record.Affiliation),
		About:       record.About,
		Website:     record.Website,
		Phone:       record.Phone,
		Programs:    make([]Program, 0, len(record.Programs)),
		Facilities:  make([]Facility, 0, len(record.Facilities)),
		RatingAvg:   record.RatingAvg,
		RatingCount: record.RatingCount,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}

	for _, raw := range record.Programs {
		normalized.Programs = append(normalized.Programs, normalizeProgram(record.ID, raw))
	}
	for index, raw := range record.Facilities {
		normalized.Facilities = append(normalized.Facilities, normalizeFacility(record.ID, index, raw))
	}
	return normalized
}

func normalizeLocation(record RawRecord) Location {
	if record.City != "" || record.District != "" {
		return Location{City: record.City, District: record.District}
	}

	// Legacy freeform address, split on the FIRST comma only so districts
	// containing commas stay intact.
	city, district, found := strings.Cut(record.Address, ",")
	if !found {
		return Location{City: strings.TrimSpace(record.Address)}
	}
	return Location{
		City:     strings.TrimSpace(city),
		District: strings.TrimSpace(district),
	}
}

func normalizeProgram(collegeID string, raw map[string]any) Program {
	program := Program{
		CollegeID: collegeID,
		Name:      stringField(raw, "program_name", "name"),
		Faculty:   Faculty(stringField(raw, "faculty")),
		ID:        stringField(raw, "id"),
	}

	switch duration := raw["duration"].(type) {
	case float64:
		program.Duration = int(duration)
	case int:
		program.Duration = duration
	}

	// A numeric fee is an amount; a string fee is display text and is never
	// interpreted as a number.
	switch fee := raw["fees"].(type) {
	case float64:
		program.Fee = fee
	case int:
		program.Fee = float64(fee)
	case string:
		program.FeeText = fee
	}
	return program
}

func normalizeFacility(collegeID string, index int, raw any) Facility {
	switch value := raw.(type) {
	case string:
		return Facility{
			ID:        fmt.Sprintf("%s-facility-%d", collegeID, index),
			CollegeID: collegeID,
			Name:      value,
		}
	case map[string]any:
		facility := Facility{
			ID:        stringField(value, "id"),
			CollegeID: collegeID,
			Name:      stringField(value, "facility_name", "name"),
		}
		if facility.ID == "" {
			facility.ID = fmt.Sprintf("%s-facility-%d", collegeID, index)
		}
		return facility
	}
	return Facility{
		ID:        fmt.Sprintf("%s-facility-%d", collegeID, index),
		CollegeID: collegeID,
	}
}

// stringField returns the first key in keys whose value is a non-empty string.
func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

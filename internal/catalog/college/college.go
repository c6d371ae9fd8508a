// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
Package college defines the core domain entities for the CollegeSathi directory.

It manages the lifecycle of college records (metadata, programs, facilities)
and implements the discovery engine: record normalization across schema
revisions, multi-criteria search and filter resolution, browsing selection
state, and the bounded side-by-side comparison selector.

Core Responsibility:

  - Directory: Defines affiliations (TU, KU, ...) and faculties (Engineering, Medical, ...).
  - Discovery: Free-text search combined with independent categorical filters.
  - Comparison: A bounded ordered set of colleges compared side by side.

This package acts as the source of truth for all college-related data models.
*/
package college

import "time"

// # Domain Enums

// Affiliation identifies the university a college is chartered under.
type Affiliation string

const (
	AffiliationTU        Affiliation = "TU"
	AffiliationKU        Affiliation = "KU"
	AffiliationPU        Affiliation = "PU"
	AffiliationPurbanchal Affiliation = "Purbanchal"
	AffiliationPokhara   Affiliation = "Pokhara"
)

// IsValid reports whether a is a recognised [Affiliation] value.
//
// Unknown values are never an error in the discovery path: they simply fail
// to match any affiliation filter.
func (a Affiliation) IsValid() bool {
	switch a {
	case
		AffiliationTU,
		AffiliationKU,
		AffiliationPU,
		AffiliationPurbanchal,
		AffiliationPokhara:
		return true
	}
	return false
}

// Affiliations lists every recognised value, in display order.
func Affiliations() []Affiliation {
	return []Affiliation{
		AffiliationTU,
		AffiliationKU,
		AffiliationPU,
		AffiliationPurbanchal,
		AffiliationPokhara,
	}
}

// Faculty is the academic department category of a program.
type Faculty string

const (
	FacultyManagement  Faculty = "Management"
	FacultyScience     Faculty = "Science"
	FacultyEngineering Faculty = "Engineering"
	FacultyMedical     Faculty = "Medical"
	FacultyHumanities  Faculty = "Humanities"
	FacultyLaw         Faculty = "Law"
)

// IsValid reports whether f is a recognised [Faculty] value.
func (f Faculty) IsValid() bool {
	switch f {
	case
		FacultyManagement,
		FacultyScience,
		FacultyEngineering,
		FacultyMedical,
		FacultyHumanities,
		FacultyLaw:
		return true
	}
	return false
}

// Faculties lists every recognised value, in display order.
func Faculties() []Faculty {
	return []Faculty{
		FacultyManagement,
		FacultyScience,
		FacultyEngineering,
		FacultyMedical,
		FacultyHumanities,
		FacultyLaw,
	}
}

// WellKnownFacilities is the closed set of standard facility labels.
// Custom free-text labels are also accepted and displayed; they just do not
// participate in closed-set validation.
var WellKnownFacilities = []string{
	"Hostel", "Library", "Transportation", "Sports",
	"Lab", "Canteen", "WiFi", "Parking",
}

// # Core Entities

// Location is a structured city/district pair.
//
// Earlier schema revisions stored a single freeform address string instead;
// the record normalizer decomposes those (see [Normalize]).
type Location struct {
	City     string `json:"city"`
	District string `json:"district"`
}

// College is the central aggregate of the CollegeSathi domain.
// It represents a single directory entry in its canonical shape: every field
// is populated (with zero defaults where source data was absent), regardless
// of which schema revision the stored row came from.
type College struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	LogoURL     string      `json:"logo_url,omitempty"`
	Location    Location    `json:"location"`
	Affiliation Affiliation `json:"affiliation"`
	About       string      `json:"about"`
	Website     string      `json:"website,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Programs    []Program   `json:"programs"`
	Facilities  []Facility  `json:"facilities"`

	// # Computed Metrics
	// Maintained by the review service; never recomputed here.
	RatingAvg   float64 `json:"average_rating"`
	RatingCount int     `json:"total_reviews"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// Program is one offered course of study belonging to exactly one College.
type Program struct {
	ID        string  `json:"id,omitempty"`
	CollegeID string  `json:"college_id,omitempty"`
	Name      string  `json:"program_name"`
	Faculty   Faculty `json:"faculty"`

	// Duration is the length of the program in years.
	Duration int `json:"duration"`

	// Fee is the numeric tuition amount in NPR. Legacy rows instead carry a
	// freeform display string in FeeText; exactly one of the two is set and
	// FeeText is never parsed into a number.
	Fee     float64 `json:"fees"`
	FeeText string  `json:"fees_text,omitempty"`
}

// HasNumericFee reports whether the program carries a numeric fee amount.
func (p Program) HasNumericFee() bool {
	return p.FeeText == "" && p.Fee > 0
}

// Facility is a named amenity belonging to exactly one College.
// Names are unique within one college's facility set.
type Facility struct {
	ID        string `json:"id"`
	CollegeID string `json:"college_id"`
	Name      string `json:"facility_name"`
}

// # Search & Filtering

// Filter holds the criteria for a filtered college listing.
//
// Empty criteria are vacuously true: a zero Filter matches the entire
// collection in its original order.
type Filter struct {
	// Query is the free-text search term, matched as a case-insensitive
	// substring across names, locations, descriptions, affiliation codes,
	// program names, faculties, facility names, and numeric fee amounts.
	Query string `json:"q,omitempty"`

	// Faculties restricts results to colleges offering at least one program
	// in any of the selected faculties.
	Faculties []Faculty `json:"faculties,omitempty"`

	// Affiliations restricts results to colleges chartered under any of the
	// selected universities.
	Affiliations []Affiliation `json:"affiliations,omitempty"`
}

// IsZero reports whether the filter imposes no restriction at all.
func (f Filter) IsZero() bool {
	return f.Query == "" && len(f.Faculties) == 0 && len(f.Affiliations) == 0
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldDistrict    = "district"
	FieldAffiliation = "affiliation"
	FieldAbout       = "about"
	FieldWebsite     = "website"
	FieldPhone       = "phone"
	FieldPrograms    = "programs"
	FieldFacilities  = "facilities"
	FieldFaculty     = "faculty"
	FieldDuration    = "duration"
	FieldFees        = "fees"
	FieldLogo        = "logo"
	FieldIDs         = "ids"
)

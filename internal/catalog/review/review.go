// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
Package review manages student and alumni reviews of colleges.

Each review belongs to exactly one college and carries a 1-5 star rating.
The package also owns the denormalized rating aggregate shown on college
cards: every write recomputes the owning college's average and count.
*/
package review

import "time"

// # Domain Enums

// Source identifies where a review was collected from.
type Source string

const (
	SourceGoogle  Source = "Google"
	SourceStudent Source = "Student"
	SourceAlumni  Source = "Alumni"
)

// IsValid reports whether s is a recognised [Source] value.
func (s Source) IsValid() bool {
	switch s {
	case SourceGoogle, SourceStudent, SourceAlumni:
		return true
	}
	return false
}

// Rating bounds for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// # Domain Entities

// Review is one rated write-up about a college.
type Review struct {
	ID           string    `json:"id"`
	CollegeID    string    `json:"college_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	ReviewText   string    `json:"review_text"`
	Source       Source    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldID           = "id"
	FieldCollegeID    = "college_id"
	FieldReviewerName = "reviewer_name"
	FieldRating       = "rating"
	FieldReviewText   = "review_text"
	FieldSource       = "source"
)

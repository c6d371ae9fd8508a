// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
Package news manages the announcement feed.

Items are short title/description notices shown on the landing page. An item
may optionally be tied to a single college; untied items are site-wide
announcements. The feed is ordered newest first.
*/
package news

import "time"

// Item is one announcement in the feed.
type Item struct {
	ID string `json:"id"`

	// CollegeID scopes the item to one college; empty means site-wide.
	CollegeID   string    `json:"college_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldID          = "id"
	FieldCollegeID   = "college_id"
	FieldTitle       = "title"
	FieldDescription = "description"
)

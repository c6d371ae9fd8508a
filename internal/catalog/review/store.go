// Copyright (c) 2026 CollegeSathi. All rights reserved.

package review

import "context"

// Repository defines the data access contract for reviews.
type Repository interface {
	// ListByCollege returns a paginated slice of one college's reviews,
	// newest first, and the total count.
	ListByCollege(context context.Context, collegeID string, limit, offset int) ([]*Review, int, error)

	// FindByID returns the review with the given ID.
	//
	// It returns apperr.NotFound if the review is absent.
	FindByID(context context.Context, id string) (*Review, error)

	// Create persists a new review. The caller generates the ID.
	Create(context context.Context, record *Review) error

	// Delete removes a review permanently.
	Delete(context context.Context, id string) error

	// Aggregate computes the live rating average and count of one college.
	Aggregate(context context.Context, collegeID string) (float64, int, error)
}

// RatingUpdater receives the recomputed rating aggregate after a write.
// The college repository satisfies this.
type RatingUpdater interface {
	UpdateRating(context context.Context, collegeID string, average float64, count int) error
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college

import "context"

// Repository defines the data access contract for the college directory.
//
// # Architecture
//
// The interface lives in the domain package because the service layer (the
// consumer) defines what it needs. The PostgreSQL implementation lives next
// door in store_postgres.go.
//
// Reads return [RawRecord] values, not [College]: rows may originate from
// older schema revisions and pass through [Normalize] before anything else
// sees them.
type Repository interface {
	// List returns every stored row ordered newest first.
	//
	// The directory is small enough to load whole; search and filtering
	// happen in memory over the normalized snapshot.
	List(context context.Context) ([]RawRecord, error)

	// FindByID returns the row with the given ID.
	//
	// It returns apperr.NotFound if the college is absent.
	FindByID(context context.Context, id string) (*RawRecord, error)

	// Create persists a new college. The caller generates the ID.
	Create(context context.Context, record *College) error

	// Update replaces every mutable field of an existing college,
	// rewriting the programs and facilities collections wholesale.
	Update(context context.Context, record *College) error

	// UpdateLogo replaces only the stored logo URL.
	UpdateLogo(context context.Context, id string, logoURL string) error

	// UpdateRating replaces the denormalized rating aggregate.
	// Called by the review service after every review write.
	UpdateRating(context context.Context, id string, average float64, count int) error

	// Delete removes a college permanently. Directory entries carry no
	// user-generated history worth retaining, so the delete is hard.
	Delete(context context.Context, id string) error
}

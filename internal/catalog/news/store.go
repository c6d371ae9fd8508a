// Copyright (c) 2026 CollegeSathi. All rights reserved.

package news

import "context"

// Repository defines the data access contract for the announcement feed.
type Repository interface {
	// List returns a paginated slice of the feed, newest first, and the
	// total count. A non-empty collegeID narrows to one college's items.
	List(context context.Context, collegeID string, limit, offset int) ([]*Item, int, error)

	// FindByID returns the item with the given ID.
	//
	// It returns apperr.NotFound if the item is absent.
	FindByID(context context.Context, id string) (*Item, error)

	// Create persists a new item. The caller generates the ID.
	Create(context context.Context, record *Item) error

	// Update replaces the title, description, and college scope of an item.
	Update(context context.Context, record *Item) error

	// Delete removes an item permanently.
	Delete(context context.Context, id string) error
}

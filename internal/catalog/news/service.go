// Copyright (c) 2026 CollegeSathi. All rights reserved.

package news

import (
	"context"

	"github.com/collegesathi/api/internal/platform/validate"
	"github.com/collegesathi/api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the announcement feed.
type Service struct {
	repository Repository
}

// NewService constructs a new [Service].
func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

// List retrieves a page of the feed, newest first. A non-empty collegeID
// narrows to one college's items.
func (service *Service) List(context context.Context, collegeID string, limit, offset int) ([]*Item, int, error) {
	return service.repository.List(context, collegeID, limit, offset)
}

// Get fetches a single feed item.
func (service *Service) Get(context context.Context, id string) (*Item, error) {
	return service.repository.FindByID(context, id)
}

/*
Create publishes a new announcement.

Parameters:
  - context: context.Context
  - record: *Item (CollegeID optional; empty means site-wide)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) Create(context context.Context, record *Item) error {
	if err := validateItem(record); err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = uuidv7.New()
	}
	return service.repository.Create(context, record)
}

// Update replaces the title, description, and college scope of an item.
func (service *Service) Update(context context.Context, record *Item) error {
	validator := &validate.Validator{}
	validator.Required(FieldID, record.ID).UUID(FieldID, record.ID)
	if err := validator.Err(); err != nil {
		return err
	}
	if err := validateItem(record); err != nil {
		return err
	}
	return service.repository.Update(context, record)
}

// Delete removes an announcement permanently.
func (service *Service) Delete(context context.Context, id string) error {
	return service.repository.Delete(context, id)
}

func validateItem(record *Item) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, record.Title).MaxLen(FieldTitle, record.Title, 300)
	validator.Required(FieldDescription, record.Description).MaxLen(FieldDescription, record.Description, 5000)
	if record.CollegeID != "" {
		validator.UUID(FieldCollegeID, record.CollegeID)
	}
	return validator.Err()
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

package review

import (
	"context"
	"math"

	"github.com/collegesathi/api/internal/platform/validate"
	"github.com/collegesathi/api/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the review lifecycle and keeps the owning college's
// denormalized rating aggregate in sync.
type Service struct {
	repository Repository
	ratings    RatingUpdater
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(repository Repository, ratings RatingUpdater) *Service {
	return &Service{
		repository: repository,
		ratings:    ratings,
	}
}

/*
ListByCollege retrieves a paginated slice of one college's reviews.

Parameters:
  - context: context.Context
  - collegeID: string (Owning college UUID)
  - limit: int
  - offset: int

Returns:
  - []*Review: Reviews newest first
  - int: Total count for pagination
  - error: Repository failures
*/
func (service *Service) ListByCollege(context context.Context, collegeID string, limit, offset int) ([]*Review, int, error) {
	return service.repository.ListByCollege(context, collegeID, limit, offset)
}

/*
Create records a new review and refreshes the college's rating aggregate.

Description: Validates the rating bounds and source vocabulary, generates a
UUID v7 identity, persists the review, then recomputes and writes back the
owning college's average and count.

Parameters:
  - context: context.Context
  - record: *Review (CollegeID must reference an existing college)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) Create(context context.Context, record *Review) error {
	validator := &validate.Validator{}
	validator.Required(FieldCollegeID, record.CollegeID).UUID(FieldCollegeID, record.CollegeID)
	validator.Required(FieldReviewerName, record.ReviewerName).MaxLen(FieldReviewerName, record.ReviewerName, 200)
	validator.Range(FieldRating, record.Rating, MinRating, MaxRating)
	validator.MaxLen(FieldReviewText, record.ReviewText, 5000)
	validator.Required(FieldSource, string(record.Source)).OneOf(FieldSource, string(record.Source),
		string(SourceGoogle),
		string(SourceStudent),
		string(SourceAlumni),
	)
	if err := validator.Err(); err != nil {
		return err
	}

	if record.ID == "" {
		record.ID = uuidv7.New()
	}

	if err := service.repository.Create(context, record); err != nil {
		return err
	}
	return service.refreshAggregate(context, record.CollegeID)
}

/*
Delete removes a review and refreshes the former owner's rating aggregate.

Parameters:
  - context: context.Context
  - id: string (Review UUID)

Returns:
  - error: apperr.NotFound or persistence errors
*/
func (service *Service) Delete(context context.Context, id string) error {
	record, err := service.repository.FindByID(context, id)
	if err != nil {
		return err
	}
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}
	return service.refreshAggregate(context, record.CollegeID)
}

// refreshAggregate recomputes one college's rating average and count from
// the live review rows and writes the result back.
func (service *Service) refreshAggregate(context context.Context, collegeID string) error {
	average, count, err := service.repository.Aggregate(context, collegeID)
	if err != nil {
		return err
	}

	// Round to one decimal, matching the precision shown on college cards.
	average = math.Round(average*10) / 10
	return service.ratings.UpdateRating(context, collegeID, average, count)
}

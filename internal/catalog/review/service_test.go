// Copyright (c) 2026 CollegeSathi. All rights reserved.

package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/catalog/review"
	"github.com/collegesathi/api/internal/platform/apperr"
)

// memoryRepository is an in-memory [review.Repository] for service tests.
type memoryRepository struct {
	reviews map[string]*review.Review
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{reviews: map[string]*review.Review{}}
}

func (repository *memoryRepository) ListByCollege(_ context.Context, collegeID string, limit, offset int) ([]*review.Review, int, error) {
	matches := make([]*review.Review, 0)
	for _, record := range repository.reviews {
		if record.CollegeID == collegeID {
			matches = append(matches, record)
		}
	}
	return matches, len(matches), nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*review.Review, error) {
	record, ok := repository.reviews[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	return record, nil
}

func (repository *memoryRepository) Create(_ context.Context, record *review.Review) error {
	repository.reviews[record.ID] = record
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := repository.reviews[id]; !ok {
		return apperr.NotFound("Review")
	}
	delete(repository.reviews, id)
	return nil
}

func (repository *memoryRepository) Aggregate(_ context.Context, collegeID string) (float64, int, error) {
	sum, count := 0, 0
	for _, record := range repository.reviews {
		if record.CollegeID == collegeID {
			sum += record.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

// ratingRecorder captures the aggregate written back after each mutation.
type ratingRecorder struct {
	collegeID string
	average   float64
	count     int
	calls     int
}

func (recorder *ratingRecorder) UpdateRating(_ context.Context, collegeID string, average float64, count int) error {
	recorder.collegeID = collegeID
	recorder.average = average
	recorder.count = count
	recorder.calls++
	return nil
}

/*
TestService_Create_RefreshesAggregate verifies that each accepted review
recomputes the owning college's rating average and count.
*/
func TestService_Create_RefreshesAggregate(t *testing.T) {
	repository := newMemoryRepository()
	recorder := &ratingRecorder{}
	service := review.NewService(repository, recorder)

	first := &review.Review{
		CollegeID:    "0191c1a0-0000-7000-8000-000000000001",
		ReviewerName: "Anu Shrestha",
		Rating:       5,
		ReviewText:   "Excellent faculty.",
		Source:       review.SourceStudent,
	}
	require.NoError(t, service.Create(context.Background(), first))
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 1, recorder.calls)
	assert.Equal(t, 5.0, recorder.average)
	assert.Equal(t, 1, recorder.count)

	second := &review.Review{
		CollegeID:    first.CollegeID,
		ReviewerName: "Bikash Rai",
		Rating:       4,
		Source:       review.SourceGoogle,
	}
	require.NoError(t, service.Create(context.Background(), second))
	assert.Equal(t, 2, recorder.calls)
	assert.Equal(t, 4.5, recorder.average)
	assert.Equal(t, 2, recorder.count)
}

/*
TestService_Create_Validation rejects out-of-range ratings and unknown
sources before anything is persisted.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		record review.Review
	}{
		{
			name: "rating_too_high",
			record: review.Review{
				CollegeID:    "0191c1a0-0000-7000-8000-000000000001",
				ReviewerName: "Anu",
				Rating:       6,
				Source:       review.SourceStudent,
			},
		},
		{
			name: "rating_too_low",
			record: review.Review{
				CollegeID:    "0191c1a0-0000-7000-8000-000000000001",
				ReviewerName: "Anu",
				Rating:       0,
				Source:       review.SourceStudent,
			},
		},
		{
			name: "unknown_source",
			record: review.Review{
				CollegeID:    "0191c1a0-0000-7000-8000-000000000001",
				ReviewerName: "Anu",
				Rating:       3,
				Source:       "Facebook",
			},
		},
		{
			name: "missing_reviewer",
			record: review.Review{
				CollegeID: "0191c1a0-0000-7000-8000-000000000001",
				Rating:    3,
				Source:    review.SourceAlumni,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := newMemoryRepository()
			recorder := &ratingRecorder{}
			service := review.NewService(repository, recorder)

			err := service.Create(context.Background(), &tt.record)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Zero(t, recorder.calls)
			assert.Empty(t, repository.reviews)
		})
	}
}

/*
TestService_Delete_RefreshesAggregate verifies that removing a review also
recomputes the former owner's aggregate, down to zero.
*/
func TestService_Delete_RefreshesAggregate(t *testing.T) {
	repository := newMemoryRepository()
	recorder := &ratingRecorder{}
	service := review.NewService(repository, recorder)

	record := &review.Review{
		CollegeID:    "0191c1a0-0000-7000-8000-000000000001",
		ReviewerName: "Anu Shrestha",
		Rating:       4,
		Source:       review.SourceAlumni,
	}
	require.NoError(t, service.Create(context.Background(), record))

	require.NoError(t, service.Delete(context.Background(), record.ID))
	assert.Equal(t, 2, recorder.calls)
	assert.Zero(t, recorder.average)
	assert.Zero(t, recorder.count)

	err := service.Delete(context.Background(), record.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

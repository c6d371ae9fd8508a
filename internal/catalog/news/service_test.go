// Copyright (c) 2026 CollegeSathi. All rights reserved.

package news_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/catalog/news"
	"github.com/collegesathi/api/internal/platform/apperr"
)

// memoryRepository is an in-memory [news.Repository] for service tests.
type memoryRepository struct {
	items map[string]*news.Item
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{items: map[string]*news.Item{}}
}

func (repository *memoryRepository) List(_ context.Context, collegeID string, limit, offset int) ([]*news.Item, int, error) {
	matches := make([]*news.Item, 0)
	for _, record := range repository.items {
		if collegeID == "" || record.CollegeID == collegeID {
			matches = append(matches, record)
		}
	}
	return matches, len(matches), nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*news.Item, error) {
	record, ok := repository.items[id]
	if !ok {
		return nil, apperr.NotFound("News item")
	}
	return record, nil
}

func (repository *memoryRepository) Create(_ context.Context, record *news.Item) error {
	repository.items[record.ID] = record
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, record *news.Item) error {
	if _, ok := repository.items[record.ID]; !ok {
		return apperr.NotFound("News item")
	}
	repository.items[record.ID] = record
	return nil
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := repository.items[id]; !ok {
		return apperr.NotFound("News item")
	}
	delete(repository.items, id)
	return nil
}

/*
TestService_Create verifies identity assignment and the required-content
rules of the feed.
*/
func TestService_Create(t *testing.T) {
	repository := newMemoryRepository()
	service := news.NewService(repository)

	record := &news.Item{
		Title:       "Admissions open for 2026",
		Description: "Applications are now being accepted for the fall intake.",
	}
	require.NoError(t, service.Create(context.Background(), record))
	assert.NotEmpty(t, record.ID)

	tests := []struct {
		name   string
		record news.Item
	}{
		{"missing_title", news.Item{Description: "body"}},
		{"missing_description", news.Item{Title: "headline"}},
		{"bad_college_scope", news.Item{Title: "t", Description: "d", CollegeID: "not-a-uuid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(context.Background(), &tt.record)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_Update requires a valid identity and propagates not-found.
*/
func TestService_Update(t *testing.T) {
	repository := newMemoryRepository()
	service := news.NewService(repository)

	missingID := &news.Item{Title: "t", Description: "d"}
	err := service.Update(context.Background(), missingID)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	absent := &news.Item{
		ID:          "0191c1a0-0000-7000-8000-00000000000f",
		Title:       "t",
		Description: "d",
	}
	err = service.Update(context.Background(), absent)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

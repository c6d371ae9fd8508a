// Copyright (c) 2026 CollegeSathi. All rights reserved.

// PostgreSQL implementation of the review [Repository].
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
// [apperr.AppError] types to avoid leaking storage implementation details.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegesathi/api/internal/platform/apperr"
	"github.com/collegesathi/api/internal/platform/database/schema"
	"github.com/collegesathi/api/internal/platform/dberr"
)

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed review store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
ListByCollege returns one college's reviews, newest first.

Description: Uses COUNT(*) OVER() to retrieve the total in the same query.

Parameters:
  - context: context.Context
  - collegeID: string
  - limit: int
  - offset: int

Returns:
  - []*Review: The requested page of reviews
  - int: Total review count for the college
  - error: Database execution errors
*/
func (repository *postgresRepository) ListByCollege(context context.Context, collegeID string, limit, offset int) ([]*Review, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3`,
		schema.CatalogReview.ID,
		schema.CatalogReview.CollegeID,
		schema.CatalogReview.ReviewerName,
		schema.CatalogReview.Rating,
		schema.CatalogReview.ReviewText,
		schema.CatalogReview.Source,
		schema.CatalogReview.CreatedAt,
		schema.CatalogReview.Table,
		schema.CatalogReview.CollegeID,
		schema.CatalogReview.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, collegeID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	total := 0
	for rows.Next() {
		record := &Review{}
		err := rows.Scan(
			&record.ID,
			&record.CollegeID,
			&record.ReviewerName,
			&record.Rating,
			&record.ReviewText,
			&record.Source,
			&record.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_reviews")
	}
	return reviews, total, nil
}

// FindByID retrieves a single review by its unique identifier.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.CatalogReview.ID,
		schema.CatalogReview.CollegeID,
		schema.CatalogReview.ReviewerName,
		schema.CatalogReview.Rating,
		schema.CatalogReview.ReviewText,
		schema.CatalogReview.Source,
		schema.CatalogReview.CreatedAt,
		schema.CatalogReview.Table,
		schema.CatalogReview.ID,
	)

	record := &Review{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&record.ID,
		&record.CollegeID,
		&record.ReviewerName,
		&record.Rating,
		&record.ReviewText,
		&record.Source,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Review")
		}
		return nil, dberr.Wrap(err, "get_review_by_id")
	}
	return record, nil
}

// Create persists a new review row.
func (repository *postgresRepository) Create(context context.Context, record *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.CatalogReview.Table,
		schema.CatalogReview.ID,
		schema.CatalogReview.CollegeID,
		schema.CatalogReview.ReviewerName,
		schema.CatalogReview.Rating,
		schema.CatalogReview.ReviewText,
		schema.CatalogReview.Source,
		schema.CatalogReview.CreatedAt,
	)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		record.ID,
		record.CollegeID,
		record.ReviewerName,
		record.Rating,
		record.ReviewText,
		string(record.Source),
		record.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_review")
	}
	return nil
}

// Delete removes a review row permanently.
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogReview.Table,
		schema.CatalogReview.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Review")
	}
	return nil
}

// Aggregate computes the live rating average and count of one college.
func (repository *postgresRepository) Aggregate(context context.Context, collegeID string) (float64, int, error) {
	query := fmt.Sprintf(`
		SELECT COALESCE(AVG(%s), 0), COUNT(*)
		FROM %s
		WHERE %s = $1`,
		schema.CatalogReview.Rating,
		schema.CatalogReview.Table,
		schema.CatalogReview.CollegeID,
	)

	var (
		average float64
		count   int
	)
	err := repository.pool.QueryRow(context, query, collegeID).Scan(&average, &count)
	if err != nil {
		return 0, 0, dberr.Wrap(err, "aggregate_reviews")
	}
	return average, count, nil
}

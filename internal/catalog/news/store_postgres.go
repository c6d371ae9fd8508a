// Copyright (c) 2026 CollegeSathi. All rights reserved.

// PostgreSQL implementation of the news [Repository].
package news

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

// NewRepository constructs a PostgreSQL backed news store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
List returns the announcement feed, newest first.

Description: The college scope filter is optional; NULLIF folds the empty
string so one query serves both the site-wide and per-college feeds.

Parameters:
  - context: context.Context
  - collegeID: string (Empty for the full feed)
  - limit: int
  - offset: int

Returns:
  - []*Item: The requested page of items
  - int: Total matching count
  - error: Database execution errors
*/
func (repository *postgresRepository) List(context context.Context, collegeID string, limit, offset int) ([]*Item, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(%s, ''), %s, %s, %s, COUNT(*) OVER() AS total_count
		FROM %s
		WHERE NULLIF($1, '') IS NULL OR %s = $1
		ORDER BY %s DESC
		LIMIT $2 OFFSET $3`,
		schema.CatalogNews.ID,
		schema.CatalogNews.CollegeID,
		schema.CatalogNews.Title,
		schema.CatalogNews.Description,
		schema.CatalogNews.CreatedAt,
		schema.CatalogNews.Table,
		schema.CatalogNews.CollegeID,
		schema.CatalogNews.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query, collegeID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_news")
	}
	defer rows.Close()

	items := make([]*Item, 0)
	total := 0
	for rows.Next() {
		record := &Item{}
		err := rows.Scan(
			&record.ID,
			&record.CollegeID,
			&record.Title,
			&record.Description,
			&record.CreatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_news_item")
		}
		items = append(items, record)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "iterate_news")
	}
	return items, total, nil
}

// FindByID retrieves a single feed item by its unique identifier.
func (repository *postgresRepository) FindByID(context context.Context, id string) (*Item, error) {
	query := fmt.Sprintf(`
		SELECT %s, COALESCE(%s, ''), %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.CatalogNews.ID,
		schema.CatalogNews.CollegeID,
		schema.CatalogNews.Title,
		schema.CatalogNews.Description,
		schema.CatalogNews.CreatedAt,
		schema.CatalogNews.Table,
		schema.CatalogNews.ID,
	)

	record := &Item{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&record.ID,
		&record.CollegeID,
		&record.Title,
		&record.Description,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("News item")
		}
		return nil, dberr.Wrap(err, "get_news_item_by_id")
	}
	return record, nil
}

// Create persists a new feed item.
func (repository *postgresRepository) Create(context context.Context, record *Item) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5)`,
		schema.CatalogNews.Table,
		schema.CatalogNews.ID,
		schema.CatalogNews.CollegeID,
		schema.CatalogNews.Title,
		schema.CatalogNews.Description,
		schema.CatalogNews.CreatedAt,
	)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		record.ID,
		record.CollegeID,
		record.Title,
		record.Description,
		record.CreatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_news_item")
	}
	return nil
}

// Update replaces the mutable fields of a feed item.
func (repository *postgresRepository) Update(context context.Context, record *Item) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = NULLIF($2, ''), %s = $3, %s = $4
		WHERE %s = $1`,
		schema.CatalogNews.Table,
		schema.CatalogNews.CollegeID,
		schema.CatalogNews.Title,
		schema.CatalogNews.Description,
		schema.CatalogNews.ID,
	)

	tag, err := repository.pool.Exec(context, query,
		record.ID,
		record.CollegeID,
		record.Title,
		record.Description,
	)
	if err != nil {
		return dberr.Wrap(err, "update_news_item")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("News item")
	}
	return nil
}

// Delete removes a feed item permanently.
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogNews.Table,
		schema.CatalogNews.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_news_item")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("News item")
	}
	return nil
}

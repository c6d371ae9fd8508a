// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
PostgreSQL implementation of the college [Repository].

The programs and facilities collections are stored as JSONB documents on the
college row itself. The directory is read-heavy and small; denormalizing the
nested collections keeps every listing a single-row, single-round-trip read
and lets the record normalizer absorb shape drift between schema revisions.

Storage-specific errors (like pgx.ErrNoRows) are mapped to domain-friendly
[apperr.AppError] types to avoid leaking storage implementation details.
*/
package college

import (
	"context"
	"encoding/json"
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

// NewRepository constructs a PostgreSQL backed college store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

/*
List returns every stored college row ordered newest first.

Description: Loads the full directory in one pass. JSONB collections are
decoded into their loosely typed raw form here; canonicalization is the
normalizer's job, not the store's.

Parameters:
  - context: context.Context

Returns:
  - []RawRecord: Every row, newest first
  - error: Database execution errors
*/
func (repository *postgresRepository) List(context context.Context) ([]RawRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC`,
		schema.CatalogCollege.ID,
		schema.CatalogCollege.Name,
		schema.CatalogCollege.Address,
		schema.CatalogCollege.City,
		schema.CatalogCollege.District,
		schema.CatalogCollege.AffiliatedUniversity,
		schema.CatalogCollege.Description,
		schema.CatalogCollege.ImageURL,
		schema.CatalogCollege.WebsiteLink,
		schema.CatalogCollege.PhoneNumber,
		schema.CatalogCollege.Programs,
		schema.CatalogCollege.Facilities,
		schema.CatalogCollege.RatingAvg,
		schema.CatalogCollege.RatingCount,
		schema.CatalogCollege.CreatedAt,
		schema.CatalogCollege.UpdatedAt,
		schema.CatalogCollege.Table,
		schema.CatalogCollege.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_colleges")
	}
	defer rows.Close()

	records := make([]RawRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_college")
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_colleges")
	}
	return records, nil
}

/*
FindByID retrieves a single college row by its unique identifier.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *RawRecord: The stored row, still in raw form
  - error: apperr.NotFound or database errors
*/
func (repository *postgresRepository) FindByID(context context.Context, id string) (*RawRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1`,
		schema.CatalogCollege.ID,
		schema.CatalogCollege.Name,
		schema.CatalogCollege.Address,
		schema.CatalogCollege.City,
		schema.CatalogCollege.District,
		schema.CatalogCollege.AffiliatedUniversity,
		schema.CatalogCollege.Description,
		schema.CatalogCollege.ImageURL,
		schema.CatalogCollege.WebsiteLink,
		schema.CatalogCollege.PhoneNumber,
		schema.CatalogCollege.Programs,
		schema.CatalogCollege.Facilities,
		schema.CatalogCollege.RatingAvg,
		schema.CatalogCollege.RatingCount,
		schema.CatalogCollege.CreatedAt,
		schema.CatalogCollege.UpdatedAt,
		schema.CatalogCollege.Table,
		schema.CatalogCollege.ID,
	)

	record, err := scanRecord(repository.pool.QueryRow(context, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("College")
		}
		return nil, dberr.Wrap(err, "get_college_by_id")
	}
	return record, nil
}

/*
Create persists a new college row.

Description: The nested programs and facilities collections are marshalled
into their canonical JSON shape. City and district are stored structured;
the legacy freeform address column stays empty for new rows.

Parameters:
  - context: context.Context
  - record: *College (Entity to persist, ID already assigned)

Returns:
  - error: Database constraint violations or connectivity errors
*/
func (repository *postgresRepository) Create(context context.Context, record *College) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		schema.CatalogCollege.Table,
		schema.CatalogCollege.ID,
		schema.CatalogCollege.Name,
		schema.CatalogCollege.City,
		schema.CatalogCollege.District,
		schema.CatalogCollege.AffiliatedUniversity,
		schema.CatalogCollege.Description,
		schema.CatalogCollege.ImageURL,
		schema.CatalogCollege.WebsiteLink,
		schema.CatalogCollege.PhoneNumber,
		schema.CatalogCollege.Programs,
		schema.CatalogCollege.Facilities,
		schema.CatalogCollege.RatingAvg,
		schema.CatalogCollege.RatingCount,
		schema.CatalogCollege.CreatedAt,
		schema.CatalogCollege.UpdatedAt,
	)

	programs, facilities, err := marshalCollections(record)
	if err != nil {
		return err
	}

	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err = repository.pool.Exec(context, query,
		record.ID,
		record.Name,
		record.Location.City,
		record.Location.District,
		string(record.Affiliation),
		record.About,
		record.LogoURL,
		record.Website,
		record.Phone,
		programs,
		facilities,
		record.RatingAvg,
		record.RatingCount,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "create_college")
	}
	return nil
}

/*
Update replaces every mutable field of an existing college row.

Description: A full-record replace. The caller supplies the complete new
state including the nested collections; partial updates are composed in the
service layer by loading, mutating, and writing back.

Parameters:
  - context: context.Context
  - record: *College (Complete new state)

Returns:
  - error: apperr.NotFound when the row is absent, or database errors
*/
func (repository *postgresRepository) Update(context context.Context, record *College) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
			%s = $8, %s = $9, %s = $10, %s = $11, %s = $12, %s = ''
		WHERE %s = $1`,
		schema.CatalogCollege.Table,
		schema.CatalogCollege.Name,
		schema.CatalogCollege.City,
		schema.CatalogCollege.District,
		schema.CatalogCollege.AffiliatedUniversity,
		schema.CatalogCollege.Description,
		schema.CatalogCollege.WebsiteLink,
		schema.CatalogCollege.PhoneNumber,
		schema.CatalogCollege.Programs,
		schema.CatalogCollege.Facilities,
		schema.CatalogCollege.ImageURL,
		schema.CatalogCollege.UpdatedAt,
		schema.CatalogCollege.Address,
		schema.CatalogCollege.ID,
	)

	programs, facilities, err := marshalCollections(record)
	if err != nil {
		return err
	}

	record.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		record.ID,
		record.Name,
		record.Location.City,
		record.Location.District,
		string(record.Affiliation),
		record.About,
		record.Website,
		record.Phone,
		programs,
		facilities,
		record.LogoURL,
		record.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "update_college")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("College")
	}
	return nil
}

// UpdateLogo replaces only the stored logo URL of one college.
func (repository *postgresRepository) UpdateLogo(context context.Context, id string, logoURL string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.CatalogCollege.Table,
		schema.CatalogCollege.ImageURL,
		schema.CatalogCollege.UpdatedAt,
		schema.CatalogCollege.ID,
	)

	tag, err := repository.pool.Exec(context, query, id, logoURL, time.Now())
	if err != nil {
		return dberr.Wrap(err, "update_college_logo")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("College")
	}
	return nil
}

// UpdateRating replaces the denormalized rating aggregate of one college.
func (repository *postgresRepository) UpdateRating(context context.Context, id string, average float64, count int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.CatalogCollege.Table,
		schema.CatalogCollege.RatingAvg,
		schema.CatalogCollege.RatingCount,
		schema.CatalogCollege.ID,
	)

	tag, err := repository.pool.Exec(context, query, id, average, count)
	if err != nil {
		return dberr.Wrap(err, "update_college_rating")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("College")
	}
	return nil
}

// Delete removes a college row permanently.
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogCollege.Table,
		schema.CatalogCollege.ID,
	)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_college")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("College")
	}
	return nil
}

// # Row Mapping

// scanRecord hydrates one row into a [RawRecord], decoding the JSONB
// collections into their loosely typed raw form.
func scanRecord(row pgx.Row) (*RawRecord, error) {
	var (
		record        RawRecord
		rawPrograms   []byte
		rawFacilities []byte
	)

	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Address,
		&record.City,
		&record.District,
		&record.Affiliation,
		&record.About,
		&record.LogoURL,
		&record.Website,
		&record.Phone,
		&rawPrograms,
		&rawFacilities,
		&record.RatingAvg,
		&record.RatingCount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Collections written by older revisions may hold any JSON shape; a
	// document that fails to decode degrades to an empty collection.
	if len(rawPrograms) > 0 {
		_ = json.Unmarshal(rawPrograms, &record.Programs)
	}
	if len(rawFacilities) > 0 {
		_ = json.Unmarshal(rawFacilities, &record.Facilities)
	}
	return &record, nil
}

// marshalCollections renders the nested collections into their canonical
// JSON documents for storage.
func marshalCollections(record *College) (programs []byte, facilities []byte, err error) {
	if record.Programs == nil {
		record.Programs = []Program{}
	}
	if record.Facilities == nil {
		record.Facilities = []Facility{}
	}

	programs, err = json.Marshal(record.Programs)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres_college_repo_marshal_programs_failed: %w", err)
	}
	facilities, err = json.Marshal(record.Facilities)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres_college_repo_marshal_facilities_failed: %w", err)
	}
	return programs, facilities, nil
}

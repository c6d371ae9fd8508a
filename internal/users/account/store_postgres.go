// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
PostgreSQL implementation of the account repositories.

The account domain reads and writes the same users.account and users.session
tables the auth domain owns; it only ever touches profile fields and session
visibility, never credentials or token hashes.
*/
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegesathi/api/internal/platform/apperr"
	"github.com/collegesathi/api/internal/users/auth"
)

// PostgresAccountRepository implements [AccountRepository] using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository constructs a PostgreSQL backed account store.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

// PostgresSessionRepository implements [SessionRepository] using pgx.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository constructs a PostgreSQL backed session store.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// # Account Persistence

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *auth.User: Hydrated account entity
  - error: Not found or execution errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	const query = `
		SELECT id, username, email, displayname, avatarurl, bio, role, isverified, createdat, updatedat
		FROM users.account
		WHERE id = $1 AND deletedat IS NULL`

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.DisplayName,
		&user.AvatarURL,
		&user.Bio,
		&user.Role,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}

/*
Update persists changes to a user's mutable profile fields.

Parameters:
  - context: context.Context
  - user: *auth.User

Returns:
  - error: Update failures
*/
func (repository *PostgresAccountRepository) Update(context context.Context, user *auth.User) error {
	const query = `
		UPDATE users.account
		SET displayname = $2, avatarurl = $3, bio = $4, updatedat = $5
		WHERE id = $1 AND deletedat IS NULL`

	user.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		user.ID,
		user.DisplayName,
		user.AvatarURL,
		user.Bio,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_account_repo_update_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User not found")
	}

	return nil
}

/*
SoftDelete marks a user account as deleted using their ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Side-effect failures
*/
func (repository *PostgresAccountRepository) SoftDelete(context context.Context, id string) error {
	const query = "UPDATE users.account SET deletedat = $2 WHERE id = $1 AND deletedat IS NULL"

	tag, err := repository.pool.Exec(context, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_repo_soft_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User not found")
	}

	return nil
}

// # Session Visibility

/*
FindActiveByUserID lists every live session belonging to one user.

Description: A session is live when it is not revoked and has not expired.
Token hashes are never selected.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []SessionInfo: Active sessions, newest first
  - error: Execution errors
*/
func (repository *PostgresSessionRepository) FindActiveByUserID(context context.Context, userID string) ([]SessionInfo, error) {
	const query = `
		SELECT id, useragent, ipaddress, createdat, expiresat
		FROM users.session
		WHERE userid = $1 AND isrevoked = FALSE AND expiresat > now()
		ORDER BY createdat DESC`

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_session_repo_list_active_failed: %w", err)
	}
	defer rows.Close()

	sessions := make([]SessionInfo, 0)
	for rows.Next() {
		var info SessionInfo
		if err := rows.Scan(&info.ID, &info.UserAgent, &info.IPAddress, &info.CreatedAt, &info.ExpiresAt); err != nil {
			return nil, fmt.Errorf("postgres_session_repo_scan_failed: %w", err)
		}
		sessions = append(sessions, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_session_repo_rows_failed: %w", err)
	}

	return sessions, nil
}

/*
Revoke terminates one session, scoped to its owning user.

Parameters:
  - context: context.Context
  - userID: string
  - sessionID: string

Returns:
  - error: apperr.NotFound when the session is absent or owned by another user
*/
func (repository *PostgresSessionRepository) Revoke(context context.Context, userID, sessionID string) error {
	const query = `
		UPDATE users.session
		SET isrevoked = TRUE
		WHERE id = $2 AND userid = $1 AND isrevoked = FALSE`

	tag, err := repository.pool.Exec(context, query, userID, sessionID)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_revoke_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Session not found")
	}

	return nil
}

/*
RevokeAll terminates every session belonging to one user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Execution errors
*/
func (repository *PostgresSessionRepository) RevokeAll(context context.Context, userID string) error {
	const query = "UPDATE users.session SET isrevoked = TRUE WHERE userid = $1 AND isrevoked = FALSE"

	_, err := repository.pool.Exec(context, query, userID)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_revoke_all_failed: %w", err)
	}

	return nil
}

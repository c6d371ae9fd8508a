// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
Package account handles self-service profile management and session security.

It lets authenticated users view and update their own identity data, inspect
the devices holding active sessions, and revoke sessions they no longer
recognize.

# Architecture

  - Entities: SessionInfo (DTO). The User entity is owned by the auth package.
  - Security: Every operation is scoped to the authenticated user; a user can
    never read or revoke another user's sessions.
*/
package account

import (
	"context"
	"time"

	"github.com/collegesathi/api/internal/users/auth"
)

// # Domain Entities

// SessionInfo provides a safety-mapped view of an active user session.
// It omits sensitive token hashes for transport.
type SessionInfo struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UpdateProfileInput defines the mutable subset of user profile fields.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
	Bio         *string
}

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *auth.User: Hydrated account entity
		  - error: apperr.NotFound or database errors
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		Update persists changes to mutable profile fields.

		Parameters:
		  - context: context.Context
		  - user: *auth.User

		Returns:
		  - error: Update failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		SoftDelete marks a user account as deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Side-effect failures
	*/
	SoftDelete(context context.Context, id string) error
}

// SessionRepository defines the session visibility and revocation contract.
type SessionRepository interface {
	/*
		FindActiveByUserID lists every live session belonging to one user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []SessionInfo: Active sessions, newest first
		  - error: Retrieval failures
	*/
	FindActiveByUserID(context context.Context, userID string) ([]SessionInfo, error)

	/*
		Revoke terminates one session, scoped to its owning user.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - sessionID: string

		Returns:
		  - error: apperr.NotFound when the session is absent or foreign
	*/
	Revoke(context context.Context, userID, sessionID string) error

	/*
		RevokeAll terminates every session belonging to one user.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - error: Revocation failures
	*/
	RevokeAll(context context.Context, userID string) error
}

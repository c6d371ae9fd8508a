// Copyright (c) 2026 CollegeSathi. All rights reserved.

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collegesathi/api/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
//
// It ensures that profile updates and session security cleanup follow
// established business constraints.
type Service struct {
	accountRepository AccountRepository
	sessionRepository SessionRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(accountRepo AccountRepository, sessionRepo SessionRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRepository: sessionRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return user, nil
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Fetches the existing user state, overrides provided fields, and
synchronizes the change to persistent storage.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: Update or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	// Apply delta updates
	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

/*
DeleteAccount soft-deletes a user's account and terminates all their sessions.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Deletion or revocation failures
*/
func (service *Service) DeleteAccount(context context.Context, userID string) error {
	if err := service.accountRepository.SoftDelete(context, userID); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	// Sessions of a deleted account must not survive the account.
	if err := service.sessionRepository.RevokeAll(context, userID); err != nil {
		return fmt.Errorf("account_service_delete_revoke_failed: %w", err)
	}

	service.logger.Info("user_account_deleted", slog.String("user_id", userID))

	return nil
}

// # Session Security

/*
ListSessions provides a list of all active device sessions for the user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []SessionInfo: Active sessions, newest first
  - error: Retrieval failures
*/
func (service *Service) ListSessions(context context.Context, userID string) ([]SessionInfo, error) {
	sessions, err := service.sessionRepository.FindActiveByUserID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_sessions_failed: %w", err)
	}
	return sessions, nil
}

/*
RevokeSession terminates a specific user session by its ID.

Description: The revocation is scoped to the authenticated user; revoking a
session belonging to another user reports not found rather than forbidden to
avoid leaking session existence.

Parameters:
  - context: context.Context
  - userID: string
  - sessionID: string

Returns:
  - error: Revocation failures
*/
func (service *Service) RevokeSession(context context.Context, userID, sessionID string) error {
	if err := service.sessionRepository.Revoke(context, userID, sessionID); err != nil {
		return fmt.Errorf("account_service_revoke_session_failed: %w", err)
	}

	service.logger.Info("user_session_revoked",
		slog.String("user_id", userID),
		slog.String("session_id", sessionID),
	)

	return nil
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/platform/apperr"
	"github.com/collegesathi/api/internal/users/account"
	"github.com/collegesathi/api/internal/users/auth"
)

// memoryAccountRepository is an in-memory AccountRepository for service tests.
type memoryAccountRepository struct {
	users map[string]*auth.User
}

func (repository *memoryAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	user, ok := repository.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *user
	return &clone, nil
}

func (repository *memoryAccountRepository) Update(_ context.Context, user *auth.User) error {
	if _, ok := repository.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}
	clone := *user
	repository.users[user.ID] = &clone
	return nil
}

func (repository *memoryAccountRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := repository.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(repository.users, id)
	return nil
}

// memorySessionRepository is an in-memory SessionRepository for service tests.
type memorySessionRepository struct {
	sessions map[string][]account.SessionInfo
}

func (repository *memorySessionRepository) FindActiveByUserID(_ context.Context, userID string) ([]account.SessionInfo, error) {
	return repository.sessions[userID], nil
}

func (repository *memorySessionRepository) Revoke(_ context.Context, userID, sessionID string) error {
	live := repository.sessions[userID]
	for index, session := range live {
		if session.ID == sessionID {
			repository.sessions[userID] = append(live[:index], live[index+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Session")
}

func (repository *memorySessionRepository) RevokeAll(_ context.Context, userID string) error {
	delete(repository.sessions, userID)
	return nil
}

func newFixture() (*account.Service, *memoryAccountRepository, *memorySessionRepository) {
	accounts := &memoryAccountRepository{users: map[string]*auth.User{
		"u-1": {
			ID:          "u-1",
			Username:    "ramesh",
			Email:       "ramesh@example.com",
			DisplayName: "Ramesh",
			Bio:         "Looking at engineering colleges.",
		},
	}}
	sessions := &memorySessionRepository{sessions: map[string][]account.SessionInfo{
		"u-1": {
			{ID: "s-1", UserAgent: "Chrome", CreatedAt: time.Now()},
			{ID: "s-2", UserAgent: "Firefox", CreatedAt: time.Now()},
		},
	}}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return account.NewService(accounts, sessions, logger), accounts, sessions
}

/*
TestUpdateProfilePartial verifies that only the provided fields change and
omitted fields retain their stored values.
*/
func TestUpdateProfilePartial(t *testing.T) {
	service, accounts, _ := newFixture()

	bio := "Comparing TU and KU programs."
	updated, err := service.UpdateProfile(context.Background(), "u-1", account.UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Ramesh", updated.DisplayName, "omitted field must be preserved")
	assert.Equal(t, bio, accounts.users["u-1"].Bio, "change must be persisted")
}

/*
TestUpdateProfileUnknownUser verifies that updating a missing account reports
not found.
*/
func TestUpdateProfileUnknownUser(t *testing.T) {
	service, _, _ := newFixture()

	name := "Ghost"
	_, err := service.UpdateProfile(context.Background(), "u-ghost", account.UpdateProfileInput{DisplayName: &name})
	require.Error(t, err)

	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestDeleteAccountRevokesSessions verifies that account deletion terminates
every session the user holds.
*/
func TestDeleteAccountRevokesSessions(t *testing.T) {
	service, accounts, sessions := newFixture()

	require.NoError(t, service.DeleteAccount(context.Background(), "u-1"))

	assert.Empty(t, accounts.users)
	assert.Empty(t, sessions.sessions["u-1"])
}

/*
TestRevokeSessionScoping verifies that a user can revoke their own session by
ID and that revoking an unknown session reports not found.
*/
func TestRevokeSessionScoping(t *testing.T) {
	service, _, sessions := newFixture()

	require.NoError(t, service.RevokeSession(context.Background(), "u-1", "s-1"))
	remaining, err := service.ListSessions(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "s-2", remaining[0].ID)

	err = service.RevokeSession(context.Background(), "u-1", "s-ghost")
	require.Error(t, err)

	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Len(t, sessions.sessions["u-1"], 1)
}

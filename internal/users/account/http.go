// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
HTTP delivery layer for profile and session management.

# Security

All endpoints in this package require an active authentication session
provided by the RequireAuth middleware. Every operation is implicitly scoped
to the user identified by the verified token claims.
*/
package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegesathi/api/internal/platform/middleware"
	requestutil "github.com/collegesathi/api/internal/platform/request"
	"github.com/collegesathi/api/internal/platform/respond"
	"github.com/collegesathi/api/internal/platform/validate"
)

// Handler implements the HTTP layer for user account management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
// The router is intended to be mounted under /me.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	// Profile Management
	router.Get("/", handler.getMe)
	router.Patch("/", handler.updateMe)
	router.Delete("/", handler.deleteMe)

	// Session Security
	router.Get("/sessions", handler.listSessions)
	router.Delete("/sessions/{sessionID}", handler.revokeSession)

	return router
}

// # Profile Endpoints

/*
GET /api/v1/me.

Description: Retrieves the full private profile of the authenticated user.

Response:
  - 200: User: Fully hydrated user profile
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateMeRequest defines the expected JSON payload for profile updates.
type updateMeRequest struct {
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Bio         *string `json:"bio"`
}

/*
PATCH /api/v1/me.

Description: Applies partial updates to the authenticated user's profile.
Omitted fields are left untouched.

Request (Body):
  - updateMeRequest: Partial JSON

Response:
  - 200: User: The updated profile
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateMeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.DisplayName != nil {
		v.MinLen("display_name", *input.DisplayName, 2).MaxLen("display_name", *input.DisplayName, 50)
	}
	if input.AvatarURL != nil {
		v.MaxLen("avatar_url", *input.AvatarURL, 500)
	}
	if input.Bio != nil {
		v.MaxLen("bio", *input.Bio, 500)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, UpdateProfileInput{
		DisplayName: input.DisplayName,
		AvatarURL:   input.AvatarURL,
		Bio:         input.Bio,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/v1/me.

Description: Performs a soft-deletion of the authenticated user's account
and revokes every session it holds.

Response:
  - 204: No Content: Account deleted successfully
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) deleteMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteAccount(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Session Endpoints

/*
GET /api/v1/me/sessions.

Description: Lists the authenticated user's active device sessions.

Response:
  - 200: []SessionInfo: Active sessions, newest first
  - 401: 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listSessions(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessions, err := handler.accountService.ListSessions(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessions)
}

/*
DELETE /api/v1/me/sessions/{sessionID}.

Description: Revokes one of the authenticated user's sessions by ID.

Request:
  - sessionID: string (UUID)

Response:
  - 204: No Content: Session revoked
  - 404: 404: ErrNotFound: Session absent or owned by another user
*/
func (handler *Handler) revokeSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessionID := requestutil.ID(request, "sessionID")
	if err := handler.accountService.RevokeSession(request.Context(), userID, sessionID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
HTTP interface for the announcement feed.

Reading is public. Publishing is restricted to Admin and Moderator roles;
announcements are lighter-weight than directory edits, so moderators may
manage them without full admin rights.
*/
package news

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegesathi/api/internal/platform/middleware"
	requestutil "github.com/collegesathi/api/internal/platform/request"
	"github.com/collegesathi/api/internal/platform/respond"
	"github.com/collegesathi/api/internal/platform/sec"
	"github.com/collegesathi/api/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the announcement feed.
type Handler struct {
	service *Service
}

// NewHandler constructs a new news [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the feed's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listItems)
	router.Get("/{id}", handler.getItem)

	router.Group(func(restricted chi.Router) {
		restricted.Use(middleware.RequireRole(sec.RoleModerator))

		restricted.Post("/", handler.createItem)
		restricted.Put("/{id}", handler.updateItem)
		restricted.Delete("/{id}", handler.deleteItem)
	})

	return router
}

/*
GET /api/v1/news.

Description: Retrieves the announcement feed, newest first.

Request:
  - college_id: string (Optional UUID scope)
  - limit: int
  - page: int

Response:
  - 200: []Item: Paginated feed
*/
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	collegeID := request.URL.Query().Get(FieldCollegeID)

	items, total, err := handler.service.List(request.Context(), collegeID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, items, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/news/{id}.

Response:
  - 200: Item: Success
  - 404: 404: ErrNotFound: Item not found
*/
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, FieldID)

	record, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// itemPayload defines the inbound JSON schema for create and update.
type itemPayload struct {
	CollegeID   string `json:"college_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

/*
POST /api/v1/news.

Description: Publishes a new announcement.

Request (Body):
  - itemPayload: JSON object

Response:
  - 201: Item: Published announcement
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 403: 403: ErrForbidden: Insufficient permissions
*/
func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	var input itemPayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := &Item{
		CollegeID:   input.CollegeID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := handler.service.Create(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

/*
PUT /api/v1/news/{id}.

Description: Replaces the content of an announcement.

Response:
  - 200: Item: Updated announcement
  - 404: 404: ErrNotFound: Item not found
*/
func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, FieldID)

	var input itemPayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := &Item{
		ID:          id,
		CollegeID:   input.CollegeID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := handler.service.Update(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
DELETE /api/v1/news/{id}.

Response:
  - 204: No Content
  - 404: 404: ErrNotFound: Item not found
*/
func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, FieldID)

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

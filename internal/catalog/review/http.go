// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
HTTP interface for college reviews.

The router is mounted under /colleges/{collegeID}/reviews so every endpoint
is scoped to one college. Reading is public; writes require the Admin role
because reviews are curated imports, not open submissions.
*/
package review

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

// Handler implements the HTTP layer for review management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new review [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the review endpoints. The mount point
// provides the {collegeID} URL parameter.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listReviews)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createReview)
		admin.Delete("/{id}", handler.deleteReview)
	})

	return router
}

/*
GET /api/v1/colleges/{collegeID}/reviews.

Description: Retrieves one college's reviews, newest first.

Request:
  - collegeID: string (UUID)
  - limit: int
  - page: int

Response:
  - 200: []Review: Paginated list of reviews
*/
func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	collegeID := requestutil.ID(request, "collegeID")
	paginationParams := pagination.FromRequest(request)

	reviews, total, err := handler.service.ListByCollege(request.Context(), collegeID, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// createReviewRequest defines the inbound JSON schema for review creation.
type createReviewRequest struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
	Source       Source `json:"source"`
}

/*
POST /api/v1/colleges/{collegeID}/reviews.

Description: Records a new review and refreshes the college's rating
aggregate.

Request:
  - collegeID: string (UUID)
  - Body: createReviewRequest

Response:
  - 201: Review: Created review
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 403: 403: ErrForbidden: Insufficient permissions
*/
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	collegeID := requestutil.ID(request, "collegeID")

	var input createReviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := &Review{
		CollegeID:    collegeID,
		ReviewerName: input.ReviewerName,
		Rating:       input.Rating,
		ReviewText:   input.ReviewText,
		Source:       input.Source,
	}
	if err := handler.service.Create(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

/*
DELETE /api/v1/colleges/{collegeID}/reviews/{id}.

Description: Removes a review and refreshes the rating aggregate.

Response:
  - 204: No Content
  - 404: 404: ErrNotFound: Review not found
*/
func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, FieldID)

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
HTTP interface for discovery and management of the college directory.

# Routing Strategy

  - Public (v1): Discovery, comparison, and detail endpoints for all visitors.
  - Restricted (v1): Mutative endpoints requiring the Admin role.

The handler translates between the web/JSON layer and the internal domain
[Service].
*/
package college

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegesathi/api/internal/platform/apperr"
	"github.com/collegesathi/api/internal/platform/middleware"
	requestutil "github.com/collegesathi/api/internal/platform/request"
	"github.com/collegesathi/api/internal/platform/respond"
	"github.com/collegesathi/api/internal/platform/sec"
	"github.com/collegesathi/api/pkg/convert"
	"github.com/collegesathi/api/pkg/pagination"
	"github.com/collegesathi/api/pkg/pointer"
	"github.com/collegesathi/api/pkg/query"
	"github.com/collegesathi/api/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for the college directory.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new college [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the directory's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listColleges)
	router.Get("/facets", handler.listFacets)
	router.Get("/compare", handler.compareColleges)
	router.Get("/compare/candidates", handler.compareCandidates)
	router.Get("/{collegeID}", handler.getCollege)

	// ## Directory Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createCollege)
		admin.Put("/{collegeID}", handler.updateCollege)
		admin.Delete("/{collegeID}", handler.deleteCollege)
		admin.Post("/{collegeID}/logo", handler.uploadLogo)
	})

	return router
}

// # Discovery Endpoints

/*
GET /api/v1/colleges.

Description: Retrieves a paginated, filtered listing of the directory.
All three criteria combine conjunctively; each is optional.

Request:
  - q: string (Free-text search)
  - faculties: []string (comma-separated, e.g. Engineering,Medical)
  - affiliations: []string (comma-separated, e.g. TU,KU)
  - limit: int
  - page: int

Response:
  - 200: []College: Paginated list of matching colleges
*/
func (handler *Handler) listColleges(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query: queryParams.Get("q"),
		Faculties: slice.Map(query.StringSlice(queryParams.Get("faculties")), func(raw string) Faculty {
			return Faculty(raw)
		}),
		Affiliations: slice.Map(query.StringSlice(queryParams.Get("affiliations")), func(raw string) Affiliation {
			return Affiliation(raw)
		}),
	}

	colleges, meta, err := handler.service.List(request.Context(), filter, paginationParams)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, colleges, meta)
}

/*
GET /api/v1/colleges/facets.

Description: Returns the closed filter vocabularies the browsing UI renders
as chips, so clients never hardcode them.

Response:
  - 200: Facets object (faculties, affiliations, facilities)
*/
func (handler *Handler) listFacets(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]any{
		"faculties":    Faculties(),
		"affiliations": Affiliations(),
		"facilities":   WellKnownFacilities,
	})
}

/*
GET /api/v1/colleges/{collegeID}.

Description: Retrieves the full normalized record of one college.

Request:
  - id: string (UUID)

Response:
  - 200: College: Success
  - 404: 404: ErrNotFound: College not found
*/
func (handler *Handler) getCollege(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "collegeID")

	record, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// # Comparison Endpoints

/*
GET /api/v1/colleges/compare.

Description: Resolves a side-by-side comparison. IDs are honoured in request
order; duplicates and IDs beyond the comparison cap are silently skipped.

Request:
  - ids: []string (comma-separated UUIDs, required)

Response:
  - 200: []ComparisonEntry: Compared colleges with fee ranges
  - 400: 400: Validation: No ids supplied
  - 404: 404: ErrNotFound: An id matched no college
*/
func (handler *Handler) compareColleges(writer http.ResponseWriter, request *http.Request) {
	ids := query.StringSlice(request.URL.Query().Get(FieldIDs))

	entries, err := handler.service.Compare(request.Context(), ids)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}

/*
GET /api/v1/colleges/compare/candidates.

Description: Lists colleges eligible to join an in-progress comparison,
optionally narrowed by a name search.

Request:
  - ids: []string (comma-separated UUIDs already compared)
  - q: string (Case-insensitive name substring)
  - limit: int (Optional cap on the number of suggestions)

Response:
  - 200: []College: Eligible colleges in directory order
*/
func (handler *Handler) compareCandidates(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()
	ids := query.StringSlice(queryParams.Get(FieldIDs))

	candidates, err := handler.service.CompareCandidates(request.Context(), ids, queryParams.Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if limit := convert.ToIntD(queryParams.Get("limit"), 0); limit > 0 && limit < len(candidates) {
		candidates = candidates[:limit]
	}

	respond.OK(writer, candidates)
}

// # Request Payloads

// programPayload defines the inbound JSON schema for one program.
// Duration and fees are pointers so an omitted field is distinguishable
// from an explicit zero.
type programPayload struct {
	Name     string   `json:"program_name"`
	Faculty  Faculty  `json:"faculty"`
	Duration *int     `json:"duration"`
	Fee      *float64 `json:"fees"`
	FeeText  string   `json:"fees_text"`
}

// collegePayload defines the inbound JSON schema for create and update.
type collegePayload struct {
	Name        string           `json:"name"`
	City        string           `json:"city"`
	District    string           `json:"district"`
	Affiliation Affiliation      `json:"affiliation"`
	About       string           `json:"about"`
	Website     string           `json:"website"`
	Phone       string           `json:"phone"`
	LogoURL     string           `json:"logo_url"`
	Programs    []programPayload `json:"programs"`
	Facilities  []string         `json:"facilities"`
}

// toEntity maps the DTO onto a domain entity.
func (payload collegePayload) toEntity(id string) *College {
	record := &College{
		ID:          id,
		Name:        payload.Name,
		Location:    Location{City: payload.City, District: payload.District},
		Affiliation: payload.Affiliation,
		About:       payload.About,
		Website:     payload.Website,
		Phone:       payload.Phone,
		LogoURL:     payload.LogoURL,
		Programs:    make([]Program, 0, len(payload.Programs)),
		Facilities:  make([]Facility, 0, len(payload.Facilities)),
	}
	for _, program := range payload.Programs {
		record.Programs = append(record.Programs, Program{
			Name:     program.Name,
			Faculty:  program.Faculty,
			Duration: pointer.Val(program.Duration),
			Fee:      pointer.Val(program.Fee),
			FeeText:  program.FeeText,
		})
	}
	for _, facility := range payload.Facilities {
		record.Facilities = append(record.Facilities, Facility{Name: facility})
	}
	return record
}

// # Mutation Endpoints

/*
POST /api/v1/colleges.

Description: Registers a new college in the directory.

Request (Body):
  - collegePayload: JSON object

Response:
  - 201: College: Created directory entry
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
*/
func (handler *Handler) createCollege(writer http.ResponseWriter, request *http.Request) {
	var input collegePayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := input.toEntity("")
	if err := handler.service.Create(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

/*
PUT /api/v1/colleges/{collegeID}.

Description: Replaces the stored state of an existing college. The submitted
programs and facilities rewrite the stored collections wholesale.

Request:
  - id: string (UUID)
  - Body: collegePayload

Response:
  - 200: College: Updated directory entry
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 404: 404: ErrNotFound: College not found
*/
func (handler *Handler) updateCollege(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "collegeID")

	var input collegePayload
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record := input.toEntity(id)
	if err := handler.service.Update(request.Context(), record); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
DELETE /api/v1/colleges/{collegeID}.

Description: Permanently removes a college from the directory.

Request:
  - id: string (UUID)

Response:
  - 204: No Content
  - 404: 404: ErrNotFound: College not found
*/
func (handler *Handler) deleteCollege(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "collegeID")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/colleges/{collegeID}/logo.

Description: Uploads a logo image via multipart form and binds its public
URL to the college. The form field is named "logo".

Request:
  - id: string (UUID)
  - Body: multipart/form-data with a "logo" file part

Response:
  - 200: {"logo_url": string}: Public URL of the stored logo
  - 400: 400: Validation: Missing part, bad type, or oversize payload
  - 404: 404: ErrNotFound: College not found
*/
func (handler *Handler) uploadLogo(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.ID(request, "collegeID")

	if err := request.ParseMultipartForm(maxLogoBytes); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Invalid multipart payload"))
		return
	}

	file, header, err := request.FormFile(FieldLogo)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("Missing logo file part",
			apperr.FieldError{Field: FieldLogo, Message: "file part is required"}))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	logoURL, err := handler.service.UploadLogo(request.Context(), id, data, header.Header.Get("Content-Type"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{"logo_url": logoURL})
}

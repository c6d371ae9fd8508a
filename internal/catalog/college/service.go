// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college

import (
	"context"
	"path"
	"strings"
	"time"

	"github.com/collegesathi/api/internal/platform/apperr"
	"github.com/collegesathi/api/internal/platform/objstore"
	"github.com/collegesathi/api/internal/platform/validate"
	"github.com/collegesathi/api/pkg/pagination"
	"github.com/collegesathi/api/pkg/slice"
	"github.com/collegesathi/api/pkg/slug"
	"github.com/collegesathi/api/pkg/uuidv7"
)

// # Service Layer

// Logo upload constraints.
const (
	maxLogoBytes  = 2 << 20 // 2 MiB
	logoKeyPrefix = "logos"
)

// allowedLogoTypes maps accepted logo MIME types to their storage extension.
var allowedLogoTypes = map[string]string{
	"image/png":     ".png",
	"image/jpeg":    ".jpg",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Service orchestrates the business logic of the college directory.
// It is the single entry point for discovery, comparison, and management.
type Service struct {
	repository Repository

	// storage is nil when object storage is not configured; logo uploads
	// then fail with a service-unavailable error instead of at startup.
	storage *objstore.Client
}

// NewService constructs a new [Service] with its required dependencies.
func NewService(repository Repository, storage *objstore.Client) *Service {
	return &Service{
		repository: repository,
		storage:    storage,
	}
}

// # Discovery

/*
List resolves a filtered, paginated view of the directory.

Description: Loads the full ordered snapshot, normalizes every row into the
canonical shape, resolves the filter in memory, and slices out the requested
page. Rows keep their stored order (newest first) throughout; the filter
never reorders.

Parameters:
  - context: context.Context
  - filter: Filter (Free-text query plus faculty and affiliation sets)
  - params: pagination.Params

Returns:
  - []College: The requested page of matching colleges
  - pagination.Meta: Metadata computed over the full matching set
  - error: Repository failures
*/
func (service *Service) List(context context.Context, filter Filter, params pagination.Params) ([]College, pagination.Meta, error) {
	colleges, err := service.Snapshot(context)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	matched := Apply(colleges, filter)
	meta := pagination.NewMeta(params.Page, params.Limit, len(matched))

	// In-memory page slicing
	offset := params.Offset()
	if offset >= len(matched) {
		return []College{}, meta, nil
	}
	end := offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], meta, nil
}

/*
Get fetches a single college by its unique identifier.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - *College: The normalized entity
  - error: apperr.NotFound if no match is found
*/
func (service *Service) Get(context context.Context, id string) (*College, error) {
	record, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	normalized := Normalize(*record)
	return &normalized, nil
}

// Snapshot loads and normalizes the full directory, newest first.
func (service *Service) Snapshot(context context.Context) ([]College, error) {
	records, err := service.repository.List(context)
	if err != nil {
		return nil, err
	}
	return slice.Map(records, Normalize), nil
}

// # Comparison

// ComparisonEntry pairs one compared college with its derived fee range.
type ComparisonEntry struct {
	College  College  `json:"college"`
	FeeRange FeeRange `json:"fee_range"`
}

/*
Compare resolves the requested IDs into side-by-side comparison entries.

Description: IDs are honoured in request order. Duplicates and IDs past the
[MaxComparable] cap are silently skipped, mirroring the selector semantics.
An ID that matches no college fails the whole request; a comparison against
a phantom record is worse than an error.

Parameters:
  - context: context.Context
  - ids: []string (College UUIDs, at most MaxComparable honoured)

Returns:
  - []ComparisonEntry: Compared colleges with fee ranges, in request order
  - error: Validation failures or apperr.NotFound on an unknown ID
*/
func (service *Service) Compare(context context.Context, ids []string) ([]ComparisonEntry, error) {
	if len(ids) == 0 {
		return nil, apperr.ValidationError("At least one college id is required",
			apperr.FieldError{Field: FieldIDs, Message: "must not be empty"})
	}

	comparison := &Comparison{}
	for _, id := range ids {
		if comparison.Contains(id) || comparison.Len() >= MaxComparable {
			continue
		}
		record, err := service.Get(context, id)
		if err != nil {
			return nil, err
		}
		comparison.Add(*record)
	}

	members := comparison.Members()
	entries := make([]ComparisonEntry, 0, len(members))
	for _, member := range members {
		entries = append(entries, ComparisonEntry{College: member, FeeRange: Fees(member)})
	}
	return entries, nil
}

/*
CompareCandidates lists the colleges still eligible to join a comparison.

Parameters:
  - context: context.Context
  - ids: []string (IDs already under comparison)
  - query: string (Case-insensitive name substring, empty matches all)

Returns:
  - []College: Eligible colleges in directory order
  - error: Repository failures
*/
func (service *Service) CompareCandidates(context context.Context, ids []string, query string) ([]College, error) {
	colleges, err := service.Snapshot(context)
	if err != nil {
		return nil, err
	}

	comparison := &Comparison{}
	for _, id := range ids {
		comparison.Add(College{ID: id})
	}
	return comparison.Candidates(colleges, query), nil
}

// # Directory Management

/*
Create registers a new college in the directory.

Description: Performs business validation on the metadata, generates UUID v7
identities for the college and any programs or facilities missing one, and
persists the canonical record.

Parameters:
  - context: context.Context
  - record: *College (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) Create(context context.Context, record *College) error {
	if err := validateCollege(record); err != nil {
		return err
	}

	// Identity generation
	if record.ID == "" {
		record.ID = uuidv7.New()
	}
	assignNestedIdentities(record)

	return service.repository.Create(context, record)
}

/*
Update replaces the stored state of an existing college.

Description: A full-record replace of every editable field. The programs and
facilities collections are rewritten wholesale with the submitted state. An
empty incoming logo URL keeps the stored one, so metadata edits never drop
an uploaded logo.

Parameters:
  - context: context.Context
  - record: *College (Complete new state, ID required)

Returns:
  - error: Validation, apperr.NotFound, or persistence errors
*/
func (service *Service) Update(context context.Context, record *College) error {
	validator := &validate.Validator{}
	validator.Required(FieldID, record.ID).UUID(FieldID, record.ID)
	if err := validator.Err(); err != nil {
		return err
	}
	if err := validateCollege(record); err != nil {
		return err
	}

	existing, err := service.Get(context, record.ID)
	if err != nil {
		return err
	}
	if record.LogoURL == "" {
		record.LogoURL = existing.LogoURL
	}
	record.RatingAvg = existing.RatingAvg
	record.RatingCount = existing.RatingCount
	record.CreatedAt = existing.CreatedAt
	assignNestedIdentities(record)

	return service.repository.Update(context, record)
}

/*
Delete permanently removes a college from the directory.

Description: Removes the database record and then the college's uploaded
logo object, when one exists. The record deletion is authoritative; object
removal is best effort once the record is gone.

Parameters:
  - context: context.Context
  - id: string (College UUID)

Returns:
  - error: apperr.NotFound or persistence errors
*/
func (service *Service) Delete(context context.Context, id string) error {
	record, err := service.Get(context, id)
	if err != nil {
		return err
	}
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	if service.storage != nil {
		if key := LogoKeyFromURL(record.LogoURL); key != "" {
			_ = service.storage.Delete(context, key)
		}
	}
	return nil
}

/*
UploadLogo stores a new logo image and binds its public URL to the college.

Description: Validates size and MIME type, derives a collision-resistant
object key from the college name and upload time, pushes the bytes to object
storage, and persists the resulting URL.

Parameters:
  - context: context.Context
  - id: string (College UUID)
  - data: []byte (Raw image bytes)
  - contentType: string (Declared MIME type)

Returns:
  - string: Public URL of the stored logo
  - error: Validation, storage, or persistence errors
*/
func (service *Service) UploadLogo(context context.Context, id string, data []byte, contentType string) (string, error) {
	if service.storage == nil {
		return "", apperr.ServiceUnavailable("Logo storage is not configured")
	}

	extension, allowed := allowedLogoTypes[strings.ToLower(contentType)]
	if !allowed {
		return "", apperr.ValidationError("Unsupported logo content type",
			apperr.FieldError{Field: FieldLogo, Message: "must be png, jpeg, webp, or svg"})
	}
	if len(data) == 0 || len(data) > maxLogoBytes {
		return "", apperr.ValidationError("Logo size out of bounds",
			apperr.FieldError{Field: FieldLogo, Message: "must be between 1 byte and 2 MiB"})
	}

	record, err := service.Get(context, id)
	if err != nil {
		return "", err
	}

	key := path.Join(logoKeyPrefix, slug.From(record.Name)+"-"+timestampSuffix()+extension)
	logoURL, err := service.storage.Upload(context, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := service.repository.UpdateLogo(context, id, logoURL); err != nil {
		return "", err
	}
	return logoURL, nil
}

// LogoKeyFromURL recovers the storage key from a stored public logo URL.
// A URL that does not address the logo prefix yields an empty key.
func LogoKeyFromURL(logoURL string) string {
	marker := "/" + logoKeyPrefix + "/"
	index := strings.Index(logoURL, marker)
	if index < 0 {
		return ""
	}
	return logoURL[index+1:]
}

// # Internal Helpers

// validateCollege enforces the invariants shared by create and update.
func validateCollege(record *College) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, record.Name).MaxLen(FieldName, record.Name, 300)
	validator.MaxLen(FieldAbout, record.About, 5000)

	allowed := make([]string, 0, len(Affiliations()))
	for _, affiliation := range Affiliations() {
		allowed = append(allowed, string(affiliation))
	}
	validator.Required(FieldAffiliation, string(record.Affiliation)).
		OneOf(FieldAffiliation, string(record.Affiliation), allowed...)

	for _, program := range record.Programs {
		validator.Required(FieldPrograms, program.Name)
		if program.Faculty != "" && !program.Faculty.IsValid() {
			validator.Custom(FieldFaculty, true, "unknown faculty: "+string(program.Faculty))
		}
	}

	// Facility names are unique within one college's facility set.
	seenFacilities := make(map[string]bool, len(record.Facilities))
	for _, facility := range record.Facilities {
		validator.Required(FieldFacilities, facility.Name)
		name := strings.ToLower(strings.TrimSpace(facility.Name))
		if seenFacilities[name] {
			validator.Custom(FieldFacilities, true, "duplicate facility name: "+facility.Name)
		}
		seenFacilities[name] = true
	}
	return validator.Err()
}

// assignNestedIdentities fills in missing program and facility IDs.
func assignNestedIdentities(record *College) {
	for index := range record.Programs {
		record.Programs[index].CollegeID = record.ID
		if record.Programs[index].ID == "" {
			record.Programs[index].ID = uuidv7.New()
		}
	}
	for index := range record.Facilities {
		record.Facilities[index].CollegeID = record.ID
		if record.Facilities[index].ID == "" {
			record.Facilities[index].ID = uuidv7.New()
		}
	}
}

func timestampSuffix() string {
	return time.Now().UTC().Format("20060102150405")
}

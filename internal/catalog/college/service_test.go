// Copyright (c) 2026 CollegeSathi. All rights reserved.

package college_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegesathi/api/internal/catalog/college"
	"github.com/collegesathi/api/internal/platform/apperr"
	"github.com/collegesathi/api/pkg/pagination"
)

// memoryRepository is an in-memory [college.Repository] for service tests.
// Records keep their insertion order reversed, mimicking the store's
// newest-first listing.
type memoryRepository struct {
	records []college.RawRecord
}

func (repository *memoryRepository) List(_ context.Context) ([]college.RawRecord, error) {
	out := make([]college.RawRecord, 0, len(repository.records))
	for index := len(repository.records) - 1; index >= 0; index-- {
		out = append(out, repository.records[index])
	}
	return out, nil
}

func (repository *memoryRepository) FindByID(_ context.Context, id string) (*college.RawRecord, error) {
	for _, record := range repository.records {
		if record.ID == id {
			return &record, nil
		}
	}
	return nil, apperr.NotFound("College")
}

func (repository *memoryRepository) Create(_ context.Context, record *college.College) error {
	repository.records = append(repository.records, college.RawRecord{
		ID:          record.ID,
		Name:        record.Name,
		City:        record.Location.City,
		District:    record.Location.District,
		Affiliation: string(record.Affiliation),
		About:       record.About,
		CreatedAt:   time.Now(),
	})
	return nil
}

func (repository *memoryRepository) Update(_ context.Context, record *college.College) error {
	for index := range repository.records {
		if repository.records[index].ID == record.ID {
			repository.records[index].Name = record.Name
			return nil
		}
	}
	return apperr.NotFound("College")
}

func (repository *memoryRepository) UpdateLogo(_ context.Context, id string, logoURL string) error {
	for index := range repository.records {
		if repository.records[index].ID == id {
			repository.records[index].LogoURL = logoURL
			return nil
		}
	}
	return apperr.NotFound("College")
}

func (repository *memoryRepository) UpdateRating(_ context.Context, id string, average float64, count int) error {
	for index := range repository.records {
		if repository.records[index].ID == id {
			repository.records[index].RatingAvg = average
			repository.records[index].RatingCount = count
			return nil
		}
	}
	return apperr.NotFound("College")
}

func (repository *memoryRepository) Delete(_ context.Context, id string) error {
	for index := range repository.records {
		if repository.records[index].ID == id {
			repository.records = append(repository.records[:index], repository.records[index+1:]...)
			return nil
		}
	}
	return apperr.NotFound("College")
}

// legacyDirectory seeds the repository with rows spanning schema revisions:
// one canonical, one fully legacy (freeform address, bare facilities, legacy
// program keys), inserted oldest first.
func legacyDirectory() *memoryRepository {
	return &memoryRepository{records: []college.RawRecord{
		{
			ID:          "c-bpkihs",
			Name:        "BP Koirala Institute of Health Sciences",
			Address:     "Dharan, Sunsari",
			Affiliation: "Purbanchal",
			About:       "Medical sciences institute in eastern Nepal.",
			Programs: []map[string]any{
				{"name": "MBBS", "faculty": "Medical", "duration": float64(5), "fees": float64(3500000)},
			},
			Facilities: []any{"Hostel", "Teaching Hospital"},
		},
		{
			ID:          "c-ioe",
			Name:        "IOE Pulchowk Campus",
			City:        "Lalitpur",
			District:    "Lalitpur",
			Affiliation: "TU",
			About:       "The oldest engineering campus in Nepal.",
			Programs: []map[string]any{
				{"program_name": "BE Civil Engineering", "faculty": "Engineering", "duration": float64(4), "fees": float64(850000)},
			},
			Facilities: []any{
				map[string]any{"id": "f-lib", "facility_name": "Library"},
			},
		},
	}}
}

/*
TestService_List_NormalizesAcrossRevisions walks the read path end to end:
legacy rows come back canonical, newest first, with filters applied over the
normalized shape.
*/
func TestService_List_NormalizesAcrossRevisions(t *testing.T) {
	service := college.NewService(legacyDirectory(), nil)

	all, meta, err := service.List(context.Background(), college.Filter{}, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2, meta.Total)

	// newest row first
	assert.Equal(t, "c-ioe", all[0].ID)

	// legacy address decomposed
	legacy := all[1]
	assert.Equal(t, "Dharan", legacy.Location.City)
	assert.Equal(t, "Sunsari", legacy.Location.District)

	// bare facility strings promoted with synthetic IDs
	require.Len(t, legacy.Facilities, 2)
	assert.Equal(t, "c-bpkihs-facility-0", legacy.Facilities[0].ID)

	// the filter operates on the normalized shape, so a district search
	// hits a row that only stored a freeform address
	matched, _, err := service.List(context.Background(), college.Filter{Query: "sunsari"}, pagination.Params{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "c-bpkihs", matched[0].ID)
}

/*
TestService_List_Pagination verifies in-memory page slicing over the
filtered set.
*/
func TestService_List_Pagination(t *testing.T) {
	service := college.NewService(legacyDirectory(), nil)

	pageOne, meta, err := service.List(context.Background(), college.Filter{}, pagination.Params{Page: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, pageOne, 1)
	assert.Equal(t, "c-ioe", pageOne[0].ID)
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)

	pageTwo, _, err := service.List(context.Background(), college.Filter{}, pagination.Params{Page: 2, Limit: 1})
	require.NoError(t, err)
	require.Len(t, pageTwo, 1)
	assert.Equal(t, "c-bpkihs", pageTwo[0].ID)

	pastEnd, _, err := service.List(context.Background(), college.Filter{}, pagination.Params{Page: 9, Limit: 1})
	require.NoError(t, err)
	assert.Empty(t, pastEnd)
}

/*
TestService_Compare verifies request-order resolution, dedupe, fee ranges,
and the hard failure on unknown IDs.
*/
func TestService_Compare(t *testing.T) {
	service := college.NewService(legacyDirectory(), nil)

	entries, err := service.Compare(context.Background(), []string{"c-bpkihs", "c-ioe", "c-bpkihs"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "c-bpkihs", entries[0].College.ID)
	assert.Equal(t, college.FeeRange{Min: 3500000, Max: 3500000, Specified: true}, entries[0].FeeRange)
	assert.Equal(t, "c-ioe", entries[1].College.ID)

	_, err = service.Compare(context.Background(), []string{"c-ghost"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.Compare(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_UploadLogo_Validation verifies the guard rails in front of
object storage.
*/
func TestService_UploadLogo_Validation(t *testing.T) {
	service := college.NewService(legacyDirectory(), nil)

	// storage not configured
	_, err := service.UploadLogo(context.Background(), "c-ioe", []byte{1}, "image/png")
	require.Error(t, err)
	assert.Equal(t, "SERVICE_UNAVAILABLE", apperr.As(err).Code)
}

/*
TestService_Create_Validation verifies directory invariants on admission.
*/
func TestService_Create_Validation(t *testing.T) {
	service := college.NewService(&memoryRepository{}, nil)

	tests := []struct {
		name   string
		record college.College
	}{
		{"missing_name", college.College{Affiliation: college.AffiliationTU}},
		{"unknown_affiliation", college.College{Name: "X College", Affiliation: "Oxford"}},
		{
			"program_without_name",
			college.College{
				Name:        "X College",
				Affiliation: college.AffiliationTU,
				Programs:    []college.Program{{Faculty: college.FacultyScience}},
			},
		},
		{
			"duplicate_facility_name",
			college.College{
				Name:        "X College",
				Affiliation: college.AffiliationTU,
				Facilities:  []college.Facility{{Name: "Hostel"}, {Name: "Hostel"}},
			},
		},
		{
			"duplicate_facility_name_case_insensitive",
			college.College{
				Name:        "X College",
				Affiliation: college.AffiliationTU,
				Facilities:  []college.Facility{{Name: "Hostel"}, {Name: " hostel "}},
			},
		},
		{
			"facility_without_name",
			college.College{
				Name:        "X College",
				Affiliation: college.AffiliationTU,
				Facilities:  []college.Facility{{Name: ""}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Create(context.Background(), &tt.record)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}

	// a valid record is admitted and given an identity
	valid := &college.College{
		Name:        "Kathmandu Model College",
		Affiliation: college.AffiliationTU,
		Location:    college.Location{City: "Kathmandu", District: "Kathmandu"},
		Programs:    []college.Program{{Name: "BSc CSIT", Faculty: college.FacultyScience, Duration: 4, Fee: 600000}},
		Facilities:  []college.Facility{{Name: "Hostel"}, {Name: "Rooftop Futsal"}},
	}
	require.NoError(t, service.Create(context.Background(), valid))
	assert.NotEmpty(t, valid.ID)
	assert.NotEmpty(t, valid.Programs[0].ID)
	assert.Equal(t, valid.ID, valid.Programs[0].CollegeID)
	assert.NotEmpty(t, valid.Facilities[1].ID)
}

/*
TestService_Delete verifies removal of an existing record and the not-found
failure on an unknown identifier.
*/
func TestService_Delete(t *testing.T) {
	repository := legacyDirectory()
	service := college.NewService(repository, nil)

	require.NoError(t, service.Delete(context.Background(), "c-ioe"))
	_, err := service.Get(context.Background(), "c-ioe")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	err = service.Delete(context.Background(), "c-ghost")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestLogoKeyFromURL verifies storage key recovery from the public URL shapes
the platform emits, so deleting a college can drop its logo object.
*/
func TestLogoKeyFromURL(t *testing.T) {
	tests := []struct {
		name    string
		logoURL string
		want    string
	}{
		{"cdn_url", "https://cdn.collegesathi.com/logos/ku-som-20260831120000.png", "logos/ku-som-20260831120000.png"},
		{"bucket_url", "https://assets.nyc3.digitaloceanspaces.com/logos/ioe-pulchowk.webp", "logos/ioe-pulchowk.webp"},
		{"no_logo", "", ""},
		{"foreign_url", "https://example.com/images/banner.png", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, college.LogoKeyFromURL(tt.logoURL))
		})
	}
}

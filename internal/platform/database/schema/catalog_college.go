package schema

// CatalogCollegeTable represents the 'catalog.college' table
type CatalogCollegeTable struct {
	Table                 string
	ID                    string
	Name                  string
	Address               string
	City                  string
	District              string
	AffiliatedUniversity  string
	Description           string
	ImageURL              string
	WebsiteLink           string
	PhoneNumber           string
	Programs              string
	Facilities            string
	RatingAvg             string
	RatingCount           string
	CreatedAt             string
	UpdatedAt             string
}

// CatalogCollege is the schema definition for catalog.college
//
// The programs and facilities columns are JSONB and intentionally loosely
// typed: rows written by earlier schema revisions carry different shapes
// (see the college package's record normalizer).
var CatalogCollege = CatalogCollegeTable{
	Table:                "catalog.college",
	ID:                   "id",
	Name:                 "name",
	Address:              "address",
	City:                 "city",
	District:             "district",
	AffiliatedUniversity: "affiliateduniversity",
	Description:          "description",
	ImageURL:             "imageurl",
	WebsiteLink:          "websitelink",
	PhoneNumber:          "phonenumber",
	Programs:             "programs",
	Facilities:           "facilities",
	RatingAvg:            "ratingavg",
	RatingCount:          "ratingcount",
	CreatedAt:            "createdat",
	UpdatedAt:            "updatedat",
}

func (t CatalogCollegeTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Address, t.City, t.District, t.AffiliatedUniversity,
		t.Description, t.ImageURL, t.WebsiteLink, t.PhoneNumber, t.Programs,
		t.Facilities, t.RatingAvg, t.RatingCount, t.CreatedAt, t.UpdatedAt,
	}
}

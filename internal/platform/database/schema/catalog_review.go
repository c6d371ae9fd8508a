package schema

// CatalogReviewTable represents the 'catalog.review' table
type CatalogReviewTable struct {
	Table        string
	ID           string
	CollegeID    string
	ReviewerName string
	Rating       string
	ReviewText   string
	Source       string
	CreatedAt    string
}

// CatalogReview is the schema definition for catalog.review
var CatalogReview = CatalogReviewTable{
	Table:        "catalog.review",
	ID:           "id",
	CollegeID:    "collegeid",
	ReviewerName: "reviewername",
	Rating:       "rating",
	ReviewText:   "reviewtext",
	Source:       "source",
	CreatedAt:    "createdat",
}

func (t CatalogReviewTable) Columns() []string {
	return []string{
		t.ID, t.CollegeID, t.ReviewerName, t.Rating, t.ReviewText, t.Source, t.CreatedAt,
	}
}

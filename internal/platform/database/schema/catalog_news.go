package schema

// CatalogNewsTable represents the 'catalog.news' table
type CatalogNewsTable struct {
	Table       string
	ID          string
	CollegeID   string
	Title       string
	Description string
	CreatedAt   string
}

// CatalogNews is the schema definition for catalog.news
var CatalogNews = CatalogNewsTable{
	Table:       "catalog.news",
	ID:          "id",
	CollegeID:   "collegeid",
	Title:       "title",
	Description: "description",
	CreatedAt:   "createdat",
}

func (t CatalogNewsTable) Columns() []string {
	return []string{t.ID, t.CollegeID, t.Title, t.Description, t.CreatedAt}
}

// Package schema names the tables and columns of the catalog schema.
package schema

// CatalogBookTable represents the 'catalog.book' table
type CatalogBookTable struct {
	Table         string
	ID            string
	Title         string
	Author        string
	PublishedDate string
	ISBN10        string
	ISBN13        string
	Pages         string
	Language      string
	CoverURI      string
	Slug          string
	CreatedAt     string
	UpdatedAt     string
}

// CatalogBook is the schema definition for catalog.book
var CatalogBook = CatalogBookTable{
	Table:         "catalog.book",
	ID:            "id",
	Title:         "title",
	Author:        "author",
	PublishedDate: "publisheddate",
	ISBN10:        "isbn10",
	ISBN13:        "isbn13",
	Pages:         "pages",
	Language:      "language",
	CoverURI:      "coveruri",
	Slug:          "slug",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t CatalogBookTable) Columns() []string {
	return []string{
		t.ID,
		t.Title,
		t.Author,
		t.PublishedDate,
		t.ISBN10,
		t.ISBN13,
		t.Pages,
		t.Language,
		t.CoverURI,
		t.Slug,
		t.CreatedAt,
		t.UpdatedAt,
	}
}

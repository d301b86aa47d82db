// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package schema

// CommerceListingTable represents the 'commerce.listing' table
type CommerceListingTable struct {
	Table       string
	ID          string
	Title       string
	Slug        string
	ShortDesc   string
	Description string
	PosterURL   string
	ImageURL    string
	Type        string
	Category    string
	Price       string
	TimeFrame   string
	Available   string
	InUse       string
	CreatedAt   string
	UpdatedAt   string
}

// CommerceListing is the schema definition for commerce.listing
var CommerceListing = CommerceListingTable{
	Table:       "commerce.listing",
	ID:          "id",
	Title:       "title",
	Slug:        "slug",
	ShortDesc:   "short_desc",
	Description: "description",
	PosterURL:   "poster_url",
	ImageURL:    "image_url",
	Type:        "type",
	Category:    "category",
	Price:       "price",
	TimeFrame:   "time_frame",
	Available:   "available",
	InUse:       "in_use",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns all standard column names
func (t CommerceListingTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.ShortDesc, t.Description, t.PosterURL,
		t.ImageURL, t.Type, t.Category, t.Price, t.TimeFrame, t.Available,
		t.InUse, t.CreatedAt, t.UpdatedAt,
	}
}

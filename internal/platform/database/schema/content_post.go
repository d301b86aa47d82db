// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package schema

// ContentPostTable represents the 'content.post' table
type ContentPostTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	ShortDesc     string
	Description   string
	PosterURL     string
	ImageURL      string
	Type          string
	Status        string
	Published     string
	PublishedByID string
	CreatedAt     string
	UpdatedAt     string
}

// ContentPost is the schema definition for content.post
var ContentPost = ContentPostTable{
	Table:         "content.post",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	ShortDesc:     "short_desc",
	Description:   "description",
	PosterURL:     "poster_url",
	ImageURL:      "image_url",
	Type:          "type",
	Status:        "status",
	Published:     "published",
	PublishedByID: "published_by_id",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Columns returns all standard column names
func (t ContentPostTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.ShortDesc, t.Description, t.PosterURL,
		t.ImageURL, t.Type, t.Status, t.Published, t.PublishedByID,
		t.CreatedAt, t.UpdatedAt,
	}
}

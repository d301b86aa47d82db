// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package about manages the organization's "About" sections shown on the
// public site.
package about

import "time"

// About represents one editable block of the about page.
type About struct {
	ID          int       `json:"id"`
	Title       *string   `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

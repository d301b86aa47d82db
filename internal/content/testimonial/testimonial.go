// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package testimonial manages visitor and partner testimonials shown on the
// public site.
package testimonial

import "time"

// Testimonial is a quote attributed to a named person.
type Testimonial struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Role      *string   `json:"role"`
	Message   string    `json:"message"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldName     = "name"
	FieldRole     = "role"
	FieldMessage  = "message"
	FieldImageURL = "image_url"
)

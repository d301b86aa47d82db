// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package slider manages the hero carousel entries of the public site.
package slider

import "time"

// Slider represents one carousel entry.
type Slider struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Subtitle   *string   `json:"subtitle"`
	ImageURL   *string   `json:"image_url"`
	Action     string    `json:"action"`
	ActionText *string   `json:"action_text"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

const (
	// ActionNone marks a slide without a call-to-action button.
	ActionNone = "none"

	FieldTitle      = "title"
	FieldSubtitle   = "subtitle"
	FieldImageURL   = "image_url"
	FieldAction     = "action"
	FieldActionText = "action_text"
)

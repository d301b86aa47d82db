// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package social manages the center's public social media links.
package social

import "time"

// SocialMedia represents one organization-level social media link.
type SocialMedia struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Platforms is the closed set of accepted social network names. The team
// package shares it for member-level links.
var Platforms = []string{
	"Facebook", "Twitter", "Instagram", "LinkedIn", "YouTube", "WhatsApp", "Telegram",
}

const (
	FieldName = "name"
	FieldLink = "link"
)

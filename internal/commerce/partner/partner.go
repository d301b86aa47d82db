// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package partner manages the organizations the center works with.
package partner

import "time"

// Partner is a partner organization shown on the public site.
type Partner struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldName    = "name"
	FieldLogoURL = "logo_url"
	FieldURL     = "url"
)

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package team manages the center's staff roster and the social media links
// attached to individual members.
package team

import "time"

// Member represents one person on the public team page.
type Member struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SocialLink represents a social media link belonging to one team member.
type SocialLink struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Link         string    `json:"link"`
	TeamMemberID int       `json:"team_member_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	FieldName         = "name"
	FieldRole         = "role"
	FieldImageURL     = "image_url"
	FieldLink         = "link"
	FieldTeamMemberID = "team_member_id"
)

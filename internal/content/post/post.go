// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package post manages blog posts and event announcements. Posts are
// addressed by slug rather than numeric id.
package post

import "time"

// Post types.
const (
	TypeEvent = "event"
	TypeBlog  = "blog"
)

// Post statuses.
const (
	StatusHappening = "happening"
	StatusUpcoming  = "upcoming"
	StatusArchived  = "archived"
	StatusRecent    = "recent"
)

var (
	Types    = []string{TypeEvent, TypeBlog}
	Statuses = []string{StatusHappening, StatusUpcoming, StatusArchived, StatusRecent}
)

// Post is a blog article or event announcement.
type Post struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	ShortDesc   *string    `json:"short_desc"`
	Description string     `json:"description"`
	PosterURL   *string    `json:"poster_url"`
	ImageURL    *string    `json:"image_url"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Published   bool       `json:"published"`
	PublishedBy *Publisher `json:"published_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Publisher is the read-only author projection embedded in a post.
type Publisher struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldShortDesc   = "short_desc"
	FieldDescription = "description"
	FieldPosterURL   = "poster_url"
	FieldImageURL    = "image_url"
	FieldType        = "type"
	FieldStatus      = "status"
)

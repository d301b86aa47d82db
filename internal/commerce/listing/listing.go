// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package listing manages marketplace listings: craft products made by the
// center's artisans and accommodation offers. Listings are addressed by slug.
package listing

import "time"

// Listing types.
const (
	TypeProduct       = "product"
	TypeAccommodation = "accommodation"
)

// Accommodation categories.
const (
	CategoryFamily  = "family"
	CategorySingle  = "single"
	CategoryCouple  = "couple"
	CategoryGeneral = "general"
)

var (
	Types      = []string{TypeProduct, TypeAccommodation}
	Categories = []string{CategoryFamily, CategorySingle, CategoryCouple, CategoryGeneral}
)

// Listing is a product or accommodation offer.
type Listing struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	ShortDesc   *string   `json:"short_desc"`
	Description string    `json:"description"`
	PosterURL   *string   `json:"poster_url"`
	ImageURL    *string   `json:"image_url"`
	Type        string    `json:"type"`
	Category    *string   `json:"category"`
	Price       float64   `json:"price"`
	TimeFrame   *string   `json:"time_frame"`
	Available   bool      `json:"available"`
	InUse       bool      `json:"in_use"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldShortDesc   = "short_desc"
	FieldDescription = "description"
	FieldPosterURL   = "poster_url"
	FieldImageURL    = "image_url"
	FieldType        = "type"
	FieldCategory    = "category"
	FieldPrice       = "price"
)

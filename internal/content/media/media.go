// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package media manages the gallery images and videos published on the site.
package media

import "time"

// GalleryImage represents one image in the public gallery.
type GalleryImage struct {
	ID        int       `json:"id"`
	Title     *string   `json:"title"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Video represents one published video link.
type Video struct {
	ID        int       `json:"id"`
	Title     *string   `json:"title"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldTitle    = "title"
	FieldImageURL = "image_url"
	FieldVideoURL = "video_url"
)

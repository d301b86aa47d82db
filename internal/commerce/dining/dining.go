// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package dining manages the center's dining experiences and their table
// bookings. Dining areas are public and addressed by slug; bookings belong to
// the authenticated user who made them.
package dining

import "time"

// Dining categories.
const (
	CategoryAfricanDish      = "african_dish"
	CategoryKinyarwandaDish  = "kinyarwanda_dish"
	CategoryAfricanTradition = "african_tradition"
)

var Categories = []string{CategoryAfricanDish, CategoryKinyarwandaDish, CategoryAfricanTradition}

// Area is a bookable dining experience.
type Area struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	ShortDesc   *string   `json:"short_desc"`
	Description string    `json:"description"`
	PosterURL   *string   `json:"poster_url"`
	ImageURL    *string   `json:"image_url"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	InUse       bool      `json:"in_use"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Booking reserves a table at a dining area.
type Booking struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	DiningID    int       `json:"dining_id"`
	Guests      int       `json:"guests"`
	BookingTime time.Time `json:"booking_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldTitle       = "title"
	FieldShortDesc   = "short_desc"
	FieldDescription = "description"
	FieldPosterURL   = "poster_url"
	FieldImageURL    = "image_url"
	FieldLocation    = "location"
	FieldCategory    = "category"
	FieldDiningID    = "dining_id"
	FieldGuests      = "guests"
	FieldBookingTime = "booking_time"
)

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package dining

import "context"

// AreaFilter holds the parameters for a paginated dining area search.
type AreaFilter struct {
	Title string
	Slug  string
	Query string
}

// BookingFilter holds the parameters for a paginated booking search.
type BookingFilter struct {
	DiningID *int
	UserID   string
}

type Repository interface {
	ListAreas(context context.Context, f AreaFilter, limit, offset int) ([]*Area, int, error)
	GetAreaBySlug(context context.Context, slug string) (*Area, error)
	CreateArea(context context.Context, a *Area) error
	UpdateArea(context context.Context, a *Area) error
	DeleteAreaBySlug(context context.Context, slug string) error

	ListBookings(context context.Context, f BookingFilter, limit, offset int) ([]*Booking, int, error)
	GetBooking(context context.Context, id int) (*Booking, error)
	CreateBooking(context context.Context, b *Booking) error
	UpdateBooking(context context.Context, b *Booking) error
	DeleteBooking(context context.Context, id int) error
}

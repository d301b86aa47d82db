// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package listing

import "context"

// Filter holds the parameters for a paginated listing search.
type Filter struct {
	Type      string
	Available *bool
	Query     string
}

type Repository interface {
	ListListings(context context.Context, f Filter, limit, offset int) ([]*Listing, int, error)
	GetListingBySlug(context context.Context, slug string) (*Listing, error)
	GetListingByID(context context.Context, id int) (*Listing, error)
	CreateListing(context context.Context, l *Listing) error
	UpdateListing(context context.Context, l *Listing) error
	DeleteListingBySlug(context context.Context, slug string) error
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package donation

import "context"

// Filter holds the parameters for a paginated donation search.
type Filter struct {
	Amount *float64
	Email  string
	Query  string
}

type Repository interface {
	ListDonations(context context.Context, f Filter, limit, offset int) ([]*Donation, int, error)
	GetDonation(context context.Context, id int) (*Donation, error)
	CreateDonation(context context.Context, d *Donation) error
	UpdateDonation(context context.Context, d *Donation) error
	DeleteDonation(context context.Context, id int) error
}

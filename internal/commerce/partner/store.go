// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package partner

import "context"

// Filter holds the parameters for a paginated partner search.
type Filter struct {
	Name  string
	Query string
}

type Repository interface {
	ListPartners(context context.Context, f Filter, limit, offset int) ([]*Partner, int, error)
	GetPartner(context context.Context, id int) (*Partner, error)
	CreatePartner(context context.Context, p *Partner) error
	UpdatePartner(context context.Context, p *Partner) error
	DeletePartner(context context.Context, id int) error
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package about

import "context"

type Repository interface {
	ListAbouts(context context.Context, limit, offset int) ([]*About, int, error)
	GetAbout(context context.Context, id int) (*About, error)
	CreateAbout(context context.Context, a *About) error
	UpdateAbout(context context.Context, a *About) error
	DeleteAbout(context context.Context, id int) error
}

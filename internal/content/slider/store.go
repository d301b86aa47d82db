// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package slider

import "context"

// Filter holds the parameters for a paginated slider search.
type Filter struct {
	Active *bool
}

type Repository interface {
	ListSliders(context context.Context, f Filter, limit, offset int) ([]*Slider, int, error)
	GetSlider(context context.Context, id int) (*Slider, error)
	CreateSlider(context context.Context, s *Slider) error
	UpdateSlider(context context.Context, s *Slider) error
	DeleteSlider(context context.Context, id int) error
}

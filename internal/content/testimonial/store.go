// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package testimonial

import "context"

type Repository interface {
	ListTestimonials(context context.Context, limit, offset int) ([]*Testimonial, int, error)
	GetTestimonial(context context.Context, id int) (*Testimonial, error)
	CreateTestimonial(context context.Context, t *Testimonial) error
	UpdateTestimonial(context context.Context, t *Testimonial) error
	DeleteTestimonial(context context.Context, id int) error
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package testimonial

import (
	"context"
	"log/slog"

	"github.com/urugowoc/urugo/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTestimonials(context context.Context, limit, offset int) ([]*Testimonial, int, error) {
	return service.repo.ListTestimonials(context, limit, offset)
}

func (service *Service) GetTestimonial(context context.Context, id int) (*Testimonial, error) {
	return service.repo.GetTestimonial(context, id)
}

func (service *Service) CreateTestimonial(context context.Context, testimonial *Testimonial) error {
	if err := validateTestimonial(testimonial); err != nil {
		return err
	}

	if err := service.repo.CreateTestimonial(context, testimonial); err != nil {
		return err
	}

	service.logger.Info("testimonial_created", slog.Int("testimonial_id", testimonial.ID))
	return nil
}

func (service *Service) UpdateTestimonial(context context.Context, id int, testimonial *Testimonial) error {
	testimonial.ID = id
	if err := validateTestimonial(testimonial); err != nil {
		return err
	}

	if err := service.repo.UpdateTestimonial(context, testimonial); err != nil {
		return err
	}

	service.logger.Info("testimonial_updated", slog.Int("testimonial_id", testimonial.ID))
	return nil
}

func (service *Service) DeleteTestimonial(context context.Context, id int) error {
	if err := service.repo.DeleteTestimonial(context, id); err != nil {
		return err
	}

	service.logger.Warn("testimonial_deleted", slog.Int("testimonial_id", id))
	return nil
}

func validateTestimonial(testimonial *Testimonial) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, testimonial.Name)
	validator.MaxLen(FieldName, testimonial.Name, 100)
	validator.Required(FieldMessage, testimonial.Message)

	if testimonial.Role != nil {
		validator.MaxLen(FieldRole, *testimonial.Role, 100)
	}
	if testimonial.ImageURL != nil && *testimonial.ImageURL != "" {
		validator.URL(FieldImageURL, *testimonial.ImageURL)
	}

	return validator.Err()
}

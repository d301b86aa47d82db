// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package about

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

func (service *Service) ListAbouts(context context.Context, limit, offset int) ([]*About, int, error) {
	return service.repo.ListAbouts(context, limit, offset)
}

func (service *Service) GetAbout(context context.Context, id int) (*About, error) {
	return service.repo.GetAbout(context, id)
}

func (service *Service) CreateAbout(context context.Context, about *About) error {
	validator := &validate.Validator{}
	validator.Required(FieldDescription, about.Description)

	if about.Title != nil {
		validator.MaxLen(FieldTitle, *about.Title, 100)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateAbout(context, about); err != nil {
		return err
	}

	service.logger.Info("about_created", slog.Int("about_id", about.ID))
	return nil
}

func (service *Service) UpdateAbout(context context.Context, id int, about *About) error {
	about.ID = id
	validator := &validate.Validator{}
	validator.Required(FieldDescription, about.Description)

	if about.Title != nil {
		validator.MaxLen(FieldTitle, *about.Title, 100)
	}

	if err := validator.Err(); err != nil {
		return err
	}
	if err := service.repo.UpdateAbout(context, about); err != nil {
		return err
	}

	service.logger.Info("about_updated", slog.Int("about_id", about.ID))
	return nil
}

func (service *Service) DeleteAbout(context context.Context, id int) error {
	if err := service.repo.DeleteAbout(context, id); err != nil {
		return err
	}

	service.logger.Warn("about_deleted", slog.Int("about_id", id))
	return nil
}

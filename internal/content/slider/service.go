// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package slider

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

func (service *Service) ListSliders(context context.Context, filter Filter, limit, offset int) ([]*Slider, int, error) {
	return service.repo.ListSliders(context, filter, limit, offset)
}

func (service *Service) GetSlider(context context.Context, id int) (*Slider, error) {
	return service.repo.GetSlider(context, id)
}

func (service *Service) validate(slider *Slider) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, slider.Title).
		MaxLen(FieldTitle, slider.Title, 200).
		Required(FieldAction, slider.Action)

	if slider.ImageURL != nil {
		validator.URL(FieldImageURL, *slider.ImageURL)
	}

	// A slide with a real action needs button text to render it.
	hasText := slider.ActionText != nil && *slider.ActionText != ""
	validator.Custom(FieldActionText,
		slider.Action != ActionNone && !hasText,
		"Action text is required when an action is selected")

	return validator.Err()
}

func (service *Service) CreateSlider(context context.Context, slider *Slider) error {
	if err := service.validate(slider); err != nil {
		return err
	}

	if err := service.repo.CreateSlider(context, slider); err != nil {
		return err
	}

	service.logger.Info("slider_created", slog.String("title", slider.Title))
	return nil
}

func (service *Service) UpdateSlider(context context.Context, id int, slider *Slider) error {
	slider.ID = id
	if err := service.validate(slider); err != nil {
		return err
	}
	if err := service.repo.UpdateSlider(context, slider); err != nil {
		return err
	}

	service.logger.Info("slider_updated", slog.Int("slider_id", slider.ID))
	return nil
}

func (service *Service) DeleteSlider(context context.Context, id int) error {
	if err := service.repo.DeleteSlider(context, id); err != nil {
		return err
	}

	service.logger.Warn("slider_deleted", slog.Int("slider_id", id))
	return nil
}

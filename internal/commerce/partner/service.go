// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package partner

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

func (service *Service) ListPartners(context context.Context, f Filter, limit, offset int) ([]*Partner, int, error) {
	return service.repo.ListPartners(context, f, limit, offset)
}

func (service *Service) GetPartner(context context.Context, id int) (*Partner, error) {
	return service.repo.GetPartner(context, id)
}

func (service *Service) CreatePartner(context context.Context, partner *Partner) error {
	if err := validatePartner(partner); err != nil {
		return err
	}

	if err := service.repo.CreatePartner(context, partner); err != nil {
		return err
	}

	service.logger.Info("partner_created", slog.Int("partner_id", partner.ID))
	return nil
}

func (service *Service) UpdatePartner(context context.Context, id int, partner *Partner) error {
	partner.ID = id
	if err := validatePartner(partner); err != nil {
		return err
	}

	if err := service.repo.UpdatePartner(context, partner); err != nil {
		return err
	}

	service.logger.Info("partner_updated", slog.Int("partner_id", partner.ID))
	return nil
}

func (service *Service) DeletePartner(context context.Context, id int) error {
	if err := service.repo.DeletePartner(context, id); err != nil {
		return err
	}

	service.logger.Warn("partner_deleted", slog.Int("partner_id", id))
	return nil
}

func validatePartner(partner *Partner) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, partner.Name)
	validator.MaxLen(FieldName, partner.Name, 200)
	validator.Required(FieldURL, partner.URL)
	validator.URL(FieldURL, partner.URL)

	if partner.LogoURL != nil && *partner.LogoURL != "" {
		validator.URL(FieldLogoURL, *partner.LogoURL)
	}

	return validator.Err()
}

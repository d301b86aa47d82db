// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package donation

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

func (service *Service) ListDonations(context context.Context, f Filter, limit, offset int) ([]*Donation, int, error) {
	return service.repo.ListDonations(context, f, limit, offset)
}

func (service *Service) GetDonation(context context.Context, id int) (*Donation, error) {
	return service.repo.GetDonation(context, id)
}

func (service *Service) CreateDonation(context context.Context, donation *Donation) error {
	if err := validateDonation(donation); err != nil {
		return err
	}

	if err := service.repo.CreateDonation(context, donation); err != nil {
		return err
	}

	service.logger.Info("donation_created", slog.Int("donation_id", donation.ID), slog.Float64("amount", donation.Amount))
	return nil
}

func (service *Service) UpdateDonation(context context.Context, id int, donation *Donation) error {
	donation.ID = id
	if err := validateDonation(donation); err != nil {
		return err
	}

	if err := service.repo.UpdateDonation(context, donation); err != nil {
		return err
	}

	service.logger.Info("donation_updated", slog.Int("donation_id", donation.ID))
	return nil
}

func (service *Service) DeleteDonation(context context.Context, id int) error {
	if err := service.repo.DeleteDonation(context, id); err != nil {
		return err
	}

	service.logger.Warn("donation_deleted", slog.Int("donation_id", id))
	return nil
}

func validateDonation(donation *Donation) error {
	validator := &validate.Validator{}
	validator.Custom(FieldAmount, donation.Amount <= 0, "Amount must be greater than zero")

	if donation.Names != nil {
		validator.MaxLen(FieldNames, *donation.Names, 200)
	}
	if donation.Email != nil && *donation.Email != "" {
		validator.Email(FieldEmail, *donation.Email)
	}
	if donation.PhoneNumber != nil && *donation.PhoneNumber != "" {
		validator.Phone(FieldPhoneNumber, *donation.PhoneNumber)
	}

	return validator.Err()
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package contact

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

func (service *Service) ListContacts(context context.Context, limit, offset int) ([]*Contact, int, error) {
	return service.repo.ListContacts(context, limit, offset)
}

func (service *Service) GetContact(context context.Context, id int) (*Contact, error) {
	return service.repo.GetContact(context, id)
}

func (service *Service) validate(contact *Contact) error {
	validator := &validate.Validator{}
	validator.Required(FieldPhoneNumber, contact.PhoneNumber).
		Phone(FieldPhoneNumber, contact.PhoneNumber).
		Required(FieldEmail, contact.Email).
		Email(FieldEmail, contact.Email).
		Required(FieldAddress, contact.Address).
		MaxLen(FieldAddress, contact.Address, 100)

	return validator.Err()
}

func (service *Service) CreateContact(context context.Context, contact *Contact) error {
	if err := service.validate(contact); err != nil {
		return err
	}

	if err := service.repo.CreateContact(context, contact); err != nil {
		return err
	}

	service.logger.Info("contact_created", slog.String("email", contact.Email))
	return nil
}

func (service *Service) UpdateContact(context context.Context, id int, contact *Contact) error {
	contact.ID = id
	if err := service.validate(contact); err != nil {
		return err
	}
	if err := service.repo.UpdateContact(context, contact); err != nil {
		return err
	}

	service.logger.Info("contact_updated", slog.Int("contact_id", contact.ID))
	return nil
}

func (service *Service) DeleteContact(context context.Context, id int) error {
	if err := service.repo.DeleteContact(context, id); err != nil {
		return err
	}

	service.logger.Warn("contact_deleted", slog.Int("contact_id", id))
	return nil
}

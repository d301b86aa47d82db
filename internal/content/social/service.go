// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package social

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

func (service *Service) ListSocialMedia(context context.Context, limit, offset int) ([]*SocialMedia, int, error) {
	return service.repo.ListSocialMedia(context, limit, offset)
}

func (service *Service) GetSocialMedia(context context.Context, id int) (*SocialMedia, error) {
	return service.repo.GetSocialMedia(context, id)
}

func (service *Service) validate(link *SocialMedia) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, link.Name).
		OneOf(FieldName, link.Name, Platforms...).
		Required(FieldLink, link.Link).
		URL(FieldLink, link.Link)

	return validator.Err()
}

func (service *Service) CreateSocialMedia(context context.Context, link *SocialMedia) error {
	if err := service.validate(link); err != nil {
		return err
	}

	if err := service.repo.CreateSocialMedia(context, link); err != nil {
		return err
	}

	service.logger.Info("social_media_created", slog.String("name", link.Name))
	return nil
}

func (service *Service) UpdateSocialMedia(context context.Context, id int, link *SocialMedia) error {
	link.ID = id
	if err := service.validate(link); err != nil {
		return err
	}
	if err := service.repo.UpdateSocialMedia(context, link); err != nil {
		return err
	}

	service.logger.Info("social_media_updated", slog.Int("social_media_id", link.ID))
	return nil
}

func (service *Service) DeleteSocialMedia(context context.Context, id int) error {
	if err := service.repo.DeleteSocialMedia(context, id); err != nil {
		return err
	}

	service.logger.Warn("social_media_deleted", slog.Int("social_media_id", id))
	return nil
}

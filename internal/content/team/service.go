// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package team

import (
	"context"
	"log/slog"

	"github.com/urugowoc/urugo/internal/content/social"
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

// # Members

func (service *Service) ListMembers(context context.Context, limit, offset int) ([]*Member, int, error) {
	return service.repo.ListMembers(context, limit, offset)
}

func (service *Service) GetMember(context context.Context, id int) (*Member, error) {
	return service.repo.GetMember(context, id)
}

func (service *Service) validateMember(member *Member) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, member.Name).
		MaxLen(FieldName, member.Name, 100).
		Required(FieldRole, member.Role).
		MaxLen(FieldRole, member.Role, 100)

	if member.ImageURL != nil {
		validator.URL(FieldImageURL, *member.ImageURL)
	}

	return validator.Err()
}

func (service *Service) CreateMember(context context.Context, member *Member) error {
	if err := service.validateMember(member); err != nil {
		return err
	}

	if err := service.repo.CreateMember(context, member); err != nil {
		return err
	}

	service.logger.Info("team_member_created", slog.String("name", member.Name))
	return nil
}

func (service *Service) UpdateMember(context context.Context, id int, member *Member) error {
	member.ID = id
	if err := service.validateMember(member); err != nil {
		return err
	}
	if err := service.repo.UpdateMember(context, member); err != nil {
		return err
	}

	service.logger.Info("team_member_updated", slog.Int("team_member_id", member.ID))
	return nil
}

func (service *Service) DeleteMember(context context.Context, id int) error {
	if err := service.repo.DeleteMember(context, id); err != nil {
		return err
	}

	service.logger.Warn("team_member_deleted", slog.Int("team_member_id", id))
	return nil
}

// # Social Links

func (service *Service) ListSocialLinks(context context.Context, limit, offset int) ([]*SocialLink, int, error) {
	return service.repo.ListSocialLinks(context, limit, offset)
}

func (service *Service) GetSocialLink(context context.Context, id int) (*SocialLink, error) {
	return service.repo.GetSocialLink(context, id)
}

func (service *Service) validateSocialLink(link *SocialLink) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, link.Name).
		OneOf(FieldName, link.Name, social.Platforms...).
		Required(FieldLink, link.Link).
		URL(FieldLink, link.Link).
		Positive(FieldTeamMemberID, link.TeamMemberID)

	return validator.Err()
}

func (service *Service) CreateSocialLink(context context.Context, link *SocialLink) error {
	if err := service.validateSocialLink(link); err != nil {
		return err
	}

	if err := service.repo.CreateSocialLink(context, link); err != nil {
		return err
	}

	service.logger.Info("team_social_link_created",
		slog.String("name", link.Name), slog.Int("team_member_id", link.TeamMemberID))
	return nil
}

func (service *Service) UpdateSocialLink(context context.Context, id int, link *SocialLink) error {
	link.ID = id
	if err := service.validateSocialLink(link); err != nil {
		return err
	}
	if err := service.repo.UpdateSocialLink(context, link); err != nil {
		return err
	}

	service.logger.Info("team_social_link_updated", slog.Int("team_social_link_id", link.ID))
	return nil
}

func (service *Service) DeleteSocialLink(context context.Context, id int) error {
	if err := service.repo.DeleteSocialLink(context, id); err != nil {
		return err
	}

	service.logger.Warn("team_social_link_deleted", slog.Int("team_social_link_id", id))
	return nil
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package post

import (
	"context"
	"log/slog"

	"github.com/urugowoc/urugo/internal/platform/dberr"
	"github.com/urugowoc/urugo/internal/platform/validate"
	"github.com/urugowoc/urugo/pkg/slug"
	"github.com/urugowoc/urugo/pkg/uuid"
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

func (service *Service) ListPosts(context context.Context, f Filter, limit, offset int) ([]*Post, int, error) {
	return service.repo.ListPosts(context, f, limit, offset)
}

func (service *Service) GetPost(context context.Context, slugValue string) (*Post, error) {
	return service.repo.GetPostBySlug(context, slugValue)
}

// CreatePost slugifies the title and stamps the publishing user. When the
// generated slug is already taken a random suffix is appended once.
func (service *Service) CreatePost(context context.Context, post *Post, publishedByID string) error {
	if post.Type == "" {
		post.Type = TypeEvent
	}
	if post.Status == "" {
		post.Status = StatusUpcoming
	}
	if err := validatePost(post); err != nil {
		return err
	}

	post.Slug = slug.From(post.Title)
	err := service.repo.CreatePost(context, post, publishedByID)
	if dberr.IsUniqueViolation(err) {
		post.Slug = post.Slug + "-" + uuid.New()[:8]
		err = service.repo.CreatePost(context, post, publishedByID)
	}
	if err != nil {
		return err
	}

	service.logger.Info("post_created",
		slog.Int("post_id", post.ID),
		slog.String("slug", post.Slug),
		slog.String("published_by", publishedByID))
	return nil
}

// UpdatePost applies input to the post addressed by slug. The slug itself is
// stable and never regenerated on update.
func (service *Service) UpdatePost(context context.Context, slugValue string, input *Post) (*Post, error) {
	existing, err := service.repo.GetPostBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}

	input.ID = existing.ID
	input.Slug = existing.Slug
	input.PublishedBy = existing.PublishedBy
	if input.Type == "" {
		input.Type = existing.Type
	}
	if input.Status == "" {
		input.Status = existing.Status
	}
	if err := validatePost(input); err != nil {
		return nil, err
	}

	if err := service.repo.UpdatePost(context, input); err != nil {
		return nil, err
	}

	service.logger.Info("post_updated", slog.Int("post_id", input.ID), slog.String("slug", input.Slug))
	return input, nil
}

func (service *Service) DeletePost(context context.Context, slugValue string) error {
	if err := service.repo.DeletePostBySlug(context, slugValue); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.String("slug", slugValue))
	return nil
}

func validatePost(post *Post) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, post.Title)
	validator.MaxLen(FieldTitle, post.Title, 200)
	validator.Required(FieldDescription, post.Description)
	validator.OneOf(FieldType, post.Type, Types...)
	validator.OneOf(FieldStatus, post.Status, Statuses...)

	if post.ShortDesc != nil {
		validator.MaxLen(FieldShortDesc, *post.ShortDesc, 255)
	}
	if post.PosterURL != nil && *post.PosterURL != "" {
		validator.URL(FieldPosterURL, *post.PosterURL)
	}
	if post.ImageURL != nil && *post.ImageURL != "" {
		validator.URL(FieldImageURL, *post.ImageURL)
	}

	return validator.Err()
}

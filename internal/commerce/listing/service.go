// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package listing

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

func (service *Service) ListListings(context context.Context, f Filter, limit, offset int) ([]*Listing, int, error) {
	return service.repo.ListListings(context, f, limit, offset)
}

func (service *Service) GetListing(context context.Context, slugValue string) (*Listing, error) {
	return service.repo.GetListingBySlug(context, slugValue)
}

// CreateListing slugifies the title. When the generated slug is already
// taken a random suffix is appended once.
func (service *Service) CreateListing(context context.Context, listing *Listing) error {
	if listing.Type == "" {
		listing.Type = TypeProduct
	}
	if err := validateListing(listing); err != nil {
		return err
	}

	listing.Slug = slug.From(listing.Title)
	err := service.repo.CreateListing(context, listing)
	if dberr.IsUniqueViolation(err) {
		listing.Slug = listing.Slug + "-" + uuid.New()[:8]
		err = service.repo.CreateListing(context, listing)
	}
	if err != nil {
		return err
	}

	service.logger.Info("listing_created",
		slog.Int("listing_id", listing.ID),
		slog.String("slug", listing.Slug),
		slog.String("type", listing.Type))
	return nil
}

// UpdateListing applies input to the listing addressed by slug. The slug is
// stable and never regenerated on update.
func (service *Service) UpdateListing(context context.Context, slugValue string, input *Listing) (*Listing, error) {
	existing, err := service.repo.GetListingBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}

	input.ID = existing.ID
	input.Slug = existing.Slug
	if input.Type == "" {
		input.Type = existing.Type
	}
	if err := validateListing(input); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateListing(context, input); err != nil {
		return nil, err
	}

	service.logger.Info("listing_updated", slog.Int("listing_id", input.ID), slog.String("slug", input.Slug))
	return input, nil
}

func (service *Service) DeleteListing(context context.Context, slugValue string) error {
	if err := service.repo.DeleteListingBySlug(context, slugValue); err != nil {
		return err
	}

	service.logger.Warn("listing_deleted", slog.String("slug", slugValue))
	return nil
}

func validateListing(listing *Listing) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, listing.Title)
	validator.MaxLen(FieldTitle, listing.Title, 200)
	validator.Required(FieldDescription, listing.Description)
	validator.OneOf(FieldType, listing.Type, Types...)
	validator.Custom(FieldPrice, listing.Price < 0, "Price must not be negative")

	if listing.Category != nil && *listing.Category != "" {
		validator.OneOf(FieldCategory, *listing.Category, Categories...)
	}
	if listing.ShortDesc != nil {
		validator.MaxLen(FieldShortDesc, *listing.ShortDesc, 255)
	}
	if listing.PosterURL != nil && *listing.PosterURL != "" {
		validator.URL(FieldPosterURL, *listing.PosterURL)
	}
	if listing.ImageURL != nil && *listing.ImageURL != "" {
		validator.URL(FieldImageURL, *listing.ImageURL)
	}

	return validator.Err()
}

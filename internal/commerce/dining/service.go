// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package dining

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

// # Areas

func (service *Service) ListAreas(context context.Context, f AreaFilter, limit, offset int) ([]*Area, int, error) {
	return service.repo.ListAreas(context, f, limit, offset)
}

func (service *Service) GetArea(context context.Context, slugValue string) (*Area, error) {
	return service.repo.GetAreaBySlug(context, slugValue)
}

func (service *Service) CreateArea(context context.Context, area *Area) error {
	if area.Category == "" {
		area.Category = CategoryKinyarwandaDish
	}
	if err := validateArea(area); err != nil {
		return err
	}

	area.Slug = slug.From(area.Title)
	err := service.repo.CreateArea(context, area)
	if dberr.IsUniqueViolation(err) {
		area.Slug = area.Slug + "-" + uuid.New()[:8]
		err = service.repo.CreateArea(context, area)
	}
	if err != nil {
		return err
	}

	service.logger.Info("dining_area_created",
		slog.Int("dining_area_id", area.ID),
		slog.String("slug", area.Slug))
	return nil
}

func (service *Service) UpdateArea(context context.Context, slugValue string, input *Area) (*Area, error) {
	existing, err := service.repo.GetAreaBySlug(context, slugValue)
	if err != nil {
		return nil, err
	}

	input.ID = existing.ID
	input.Slug = existing.Slug
	if input.Category == "" {
		input.Category = existing.Category
	}
	if err := validateArea(input); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateArea(context, input); err != nil {
		return nil, err
	}

	service.logger.Info("dining_area_updated", slog.Int("dining_area_id", input.ID), slog.String("slug", input.Slug))
	return input, nil
}

func (service *Service) DeleteArea(context context.Context, slugValue string) error {
	if err := service.repo.DeleteAreaBySlug(context, slugValue); err != nil {
		return err
	}

	service.logger.Warn("dining_area_deleted", slog.String("slug", slugValue))
	return nil
}

func validateArea(area *Area) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, area.Title)
	validator.MaxLen(FieldTitle, area.Title, 200)
	validator.Required(FieldDescription, area.Description)
	validator.Required(FieldLocation, area.Location)
	validator.OneOf(FieldCategory, area.Category, Categories...)

	if area.ShortDesc != nil {
		validator.MaxLen(FieldShortDesc, *area.ShortDesc, 255)
	}
	if area.PosterURL != nil && *area.PosterURL != "" {
		validator.URL(FieldPosterURL, *area.PosterURL)
	}
	if area.ImageURL != nil && *area.ImageURL != "" {
		validator.URL(FieldImageURL, *area.ImageURL)
	}

	return validator.Err()
}

// # Bookings

func (service *Service) ListBookings(context context.Context, f BookingFilter, limit, offset int) ([]*Booking, int, error) {
	return service.repo.ListBookings(context, f, limit, offset)
}

func (service *Service) GetBooking(context context.Context, id int) (*Booking, error) {
	return service.repo.GetBooking(context, id)
}

// CreateBooking reserves a table on behalf of the authenticated user.
func (service *Service) CreateBooking(context context.Context, booking *Booking, userID string) error {
	booking.UserID = userID
	if err := validateBooking(booking); err != nil {
		return err
	}

	if err := service.repo.CreateBooking(context, booking); err != nil {
		return err
	}

	service.logger.Info("dining_booking_created",
		slog.Int("dining_booking_id", booking.ID),
		slog.Int("dining_area_id", booking.DiningID),
		slog.String("user_id", booking.UserID))
	return nil
}

func (service *Service) UpdateBooking(context context.Context, id int, booking *Booking) error {
	existing, err := service.repo.GetBooking(context, id)
	if err != nil {
		return err
	}

	booking.ID = existing.ID
	booking.UserID = existing.UserID
	if err := validateBooking(booking); err != nil {
		return err
	}

	if err := service.repo.UpdateBooking(context, booking); err != nil {
		return err
	}

	service.logger.Info("dining_booking_updated", slog.Int("dining_booking_id", booking.ID))
	return nil
}

func (service *Service) DeleteBooking(context context.Context, id int) error {
	if err := service.repo.DeleteBooking(context, id); err != nil {
		return err
	}

	service.logger.Warn("dining_booking_deleted", slog.Int("dining_booking_id", id))
	return nil
}

func validateBooking(booking *Booking) error {
	validator := &validate.Validator{}
	validator.Positive(FieldDiningID, booking.DiningID)
	validator.Positive(FieldGuests, booking.Guests)
	validator.Custom(FieldBookingTime, booking.BookingTime.IsZero(), "Booking time is required")

	return validator.Err()
}

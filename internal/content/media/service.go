// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package media

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

// # Gallery

func (service *Service) ListGalleryImages(context context.Context, limit, offset int) ([]*GalleryImage, int, error) {
	return service.repo.ListGalleryImages(context, limit, offset)
}

func (service *Service) GetGalleryImage(context context.Context, id int) (*GalleryImage, error) {
	return service.repo.GetGalleryImage(context, id)
}

func (service *Service) CreateGalleryImage(context context.Context, image *GalleryImage) error {
	if err := validateGalleryImage(image); err != nil {
		return err
	}

	if err := service.repo.CreateGalleryImage(context, image); err != nil {
		return err
	}

	service.logger.Info("gallery_image_created", slog.Int("gallery_image_id", image.ID))
	return nil
}

func (service *Service) UpdateGalleryImage(context context.Context, id int, image *GalleryImage) error {
	image.ID = id
	if err := validateGalleryImage(image); err != nil {
		return err
	}

	if err := service.repo.UpdateGalleryImage(context, image); err != nil {
		return err
	}

	service.logger.Info("gallery_image_updated", slog.Int("gallery_image_id", image.ID))
	return nil
}

func (service *Service) DeleteGalleryImage(context context.Context, id int) error {
	if err := service.repo.DeleteGalleryImage(context, id); err != nil {
		return err
	}

	service.logger.Warn("gallery_image_deleted", slog.Int("gallery_image_id", id))
	return nil
}

func validateGalleryImage(image *GalleryImage) error {
	validator := &validate.Validator{}
	validator.Required(FieldImageURL, image.ImageURL)
	validator.URL(FieldImageURL, image.ImageURL)

	if image.Title != nil {
		validator.MaxLen(FieldTitle, *image.Title, 100)
	}

	return validator.Err()
}

// # Videos

func (service *Service) ListVideos(context context.Context, limit, offset int) ([]*Video, int, error) {
	return service.repo.ListVideos(context, limit, offset)
}

func (service *Service) GetVideo(context context.Context, id int) (*Video, error) {
	return service.repo.GetVideo(context, id)
}

func (service *Service) CreateVideo(context context.Context, video *Video) error {
	if err := validateVideo(video); err != nil {
		return err
	}

	if err := service.repo.CreateVideo(context, video); err != nil {
		return err
	}

	service.logger.Info("video_created", slog.Int("video_id", video.ID))
	return nil
}

func (service *Service) UpdateVideo(context context.Context, id int, video *Video) error {
	video.ID = id
	if err := validateVideo(video); err != nil {
		return err
	}

	if err := service.repo.UpdateVideo(context, video); err != nil {
		return err
	}

	service.logger.Info("video_updated", slog.Int("video_id", video.ID))
	return nil
}

func (service *Service) DeleteVideo(context context.Context, id int) error {
	if err := service.repo.DeleteVideo(context, id); err != nil {
		return err
	}

	service.logger.Warn("video_deleted", slog.Int("video_id", id))
	return nil
}

func validateVideo(video *Video) error {
	validator := &validate.Validator{}
	validator.Required(FieldVideoURL, video.VideoURL)
	validator.URL(FieldVideoURL, video.VideoURL)

	if video.Title != nil {
		validator.MaxLen(FieldTitle, *video.Title, 100)
	}

	return validator.Err()
}

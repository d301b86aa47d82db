// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package media

import "context"

type Repository interface {
	ListGalleryImages(context context.Context, limit, offset int) ([]*GalleryImage, int, error)
	GetGalleryImage(context context.Context, id int) (*GalleryImage, error)
	CreateGalleryImage(context context.Context, image *GalleryImage) error
	UpdateGalleryImage(context context.Context, image *GalleryImage) error
	DeleteGalleryImage(context context.Context, id int) error

	ListVideos(context context.Context, limit, offset int) ([]*Video, int, error)
	GetVideo(context context.Context, id int) (*Video, error)
	CreateVideo(context context.Context, video *Video) error
	UpdateVideo(context context.Context, video *Video) error
	DeleteVideo(context context.Context, id int) error
}

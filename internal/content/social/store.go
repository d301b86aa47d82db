// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package social

import "context"

type Repository interface {
	ListSocialMedia(context context.Context, limit, offset int) ([]*SocialMedia, int, error)
	GetSocialMedia(context context.Context, id int) (*SocialMedia, error)
	CreateSocialMedia(context context.Context, s *SocialMedia) error
	UpdateSocialMedia(context context.Context, s *SocialMedia) error
	DeleteSocialMedia(context context.Context, id int) error
}

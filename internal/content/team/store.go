// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package team

import "context"

type Repository interface {
	ListMembers(context context.Context, limit, offset int) ([]*Member, int, error)
	GetMember(context context.Context, id int) (*Member, error)
	CreateMember(context context.Context, m *Member) error
	UpdateMember(context context.Context, m *Member) error
	DeleteMember(context context.Context, id int) error

	ListSocialLinks(context context.Context, limit, offset int) ([]*SocialLink, int, error)
	GetSocialLink(context context.Context, id int) (*SocialLink, error)
	CreateSocialLink(context context.Context, link *SocialLink) error
	UpdateSocialLink(context context.Context, link *SocialLink) error
	DeleteSocialLink(context context.Context, id int) error
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package post

import "context"

// Filter holds the parameters for a paginated post search.
type Filter struct {
	Type        string
	Status      string
	PublishedBy string
	Query       string
}

type Repository interface {
	ListPosts(context context.Context, f Filter, limit, offset int) ([]*Post, int, error)
	GetPostBySlug(context context.Context, slug string) (*Post, error)
	CreatePost(context context.Context, p *Post, publishedByID string) error
	UpdatePost(context context.Context, p *Post) error
	DeletePostBySlug(context context.Context, slug string) error
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package post_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urugowoc/urugo/internal/content/post"
	"github.com/urugowoc/urugo/internal/platform/apperr"
	"github.com/urugowoc/urugo/internal/platform/dberr"
)

// # In-Memory Fake

type fakePostRepo struct {
	bySlug map[string]*post.Post
	nextID int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{bySlug: make(map[string]*post.Post), nextID: 1}
}

func (repo *fakePostRepo) ListPosts(_ context.Context, _ post.Filter, _, _ int) ([]*post.Post, int, error) {
	posts := make([]*post.Post, 0, len(repo.bySlug))
	for _, p := range repo.bySlug {
		posts = append(posts, p)
	}
	return posts, len(posts), nil
}

func (repo *fakePostRepo) GetPostBySlug(_ context.Context, slug string) (*post.Post, error) {
	if p, ok := repo.bySlug[slug]; ok {
		return p, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakePostRepo) CreatePost(_ context.Context, p *post.Post, publishedByID string) error {
	if _, exists := repo.bySlug[p.Slug]; exists {
		// The same shape a real insert produces when the unique index fires.
		return dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "create post")
	}
	p.ID = repo.nextID
	repo.nextID++
	p.PublishedBy = &post.Publisher{ID: publishedByID, Email: "publisher@urugowoc.org"}
	repo.bySlug[p.Slug] = p
	return nil
}

func (repo *fakePostRepo) UpdatePost(_ context.Context, p *post.Post) error {
	if _, ok := repo.bySlug[p.Slug]; !ok {
		return dberr.ErrNotFound
	}
	repo.bySlug[p.Slug] = p
	return nil
}

func (repo *fakePostRepo) DeletePostBySlug(_ context.Context, slug string) error {
	if _, ok := repo.bySlug[slug]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.bySlug, slug)
	return nil
}

func newPostService() (*post.Service, *fakePostRepo) {
	repo := newFakePostRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return post.NewService(repo, logger), repo
}

// # Creation

/*
TestService_CreatePost verifies the slug is derived from the title, the
publishing user is stamped, and empty type/status fall back to defaults.
*/
func TestService_CreatePost(t *testing.T) {
	service, _ := newPostService()

	input := &post.Post{
		Title:       "Umuganda Community Day!",
		Description: "Monthly community work at the center.",
	}
	require.NoError(t, service.CreatePost(context.Background(), input, "user-1"))

	assert.Equal(t, "umuganda-community-day", input.Slug)
	assert.Equal(t, post.TypeEvent, input.Type)
	assert.Equal(t, post.StatusUpcoming, input.Status)
	require.NotNil(t, input.PublishedBy)
	assert.Equal(t, "user-1", input.PublishedBy.ID)
}

/*
TestService_CreatePost_SlugCollision verifies a taken slug gets a random
suffix instead of failing the whole request.
*/
func TestService_CreatePost_SlugCollision(t *testing.T) {
	service, repo := newPostService()

	first := &post.Post{Title: "Weaving Workshop", Description: "Hands-on basket weaving."}
	require.NoError(t, service.CreatePost(context.Background(), first, "user-1"))
	require.Equal(t, "weaving-workshop", first.Slug)

	second := &post.Post{Title: "Weaving Workshop", Description: "Second edition."}
	require.NoError(t, service.CreatePost(context.Background(), second, "user-2"))

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Regexp(t, `^weaving-workshop-[0-9a-f]{8}$`, second.Slug)
	assert.Len(t, repo.bySlug, 2)
}

/*
TestService_CreatePost_Invalid verifies field validation happens before any
repository write.
*/
func TestService_CreatePost_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *post.Post
		field string
	}{
		{"missing_title", &post.Post{Description: "Body"}, "title"},
		{"missing_description", &post.Post{Title: "Title"}, "description"},
		{"bad_type", &post.Post{Title: "Title", Description: "Body", Type: "announcement"}, "type"},
		{"bad_status", &post.Post{Title: "Title", Description: "Body", Status: "draft"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newPostService()

			err := service.CreatePost(context.Background(), tt.input, "user-1")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Contains(t, failedFields(ae.Details), tt.field)
			assert.Empty(t, repo.bySlug)
		})
	}
}

func failedFields(details []apperr.FieldError) []string {
	fields := make([]string, 0, len(details))
	for _, detail := range details {
		fields = append(fields, detail.Field)
	}
	return fields
}

// # Update

/*
TestService_UpdatePost verifies the slug and publisher survive an update
untouched while the content fields are replaced.
*/
func TestService_UpdatePost(t *testing.T) {
	service, _ := newPostService()

	original := &post.Post{Title: "Craft Exhibition", Description: "Opening soon."}
	require.NoError(t, service.CreatePost(context.Background(), original, "user-1"))

	updated, err := service.UpdatePost(context.Background(), original.Slug, &post.Post{
		Title:       "Craft Exhibition 2026",
		Description: "Now open daily.",
		Status:      post.StatusHappening,
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "craft-exhibition", updated.Slug)
	assert.Equal(t, "Craft Exhibition 2026", updated.Title)
	assert.Equal(t, post.StatusHappening, updated.Status)
	require.NotNil(t, updated.PublishedBy)
	assert.Equal(t, "user-1", updated.PublishedBy.ID)
}

/*
TestService_UpdatePost_KeepsEnums verifies empty type/status on update mean
"leave as is", not "reset to defaults".
*/
func TestService_UpdatePost_KeepsEnums(t *testing.T) {
	service, _ := newPostService()

	original := &post.Post{
		Title:       "Annual Report Launch",
		Description: "Launch event.",
		Type:        post.TypeBlog,
		Status:      post.StatusArchived,
	}
	require.NoError(t, service.CreatePost(context.Background(), original, "user-1"))

	updated, err := service.UpdatePost(context.Background(), original.Slug, &post.Post{
		Title:       "Annual Report Launch",
		Description: "Recap and photos.",
	})
	require.NoError(t, err)

	assert.Equal(t, post.TypeBlog, updated.Type)
	assert.Equal(t, post.StatusArchived, updated.Status)
}

func TestService_UpdatePost_NotFound(t *testing.T) {
	service, _ := newPostService()

	_, err := service.UpdatePost(context.Background(), "missing", &post.Post{
		Title:       "Anything",
		Description: "Anything",
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

// # Deletion

func TestService_DeletePost(t *testing.T) {
	service, repo := newPostService()

	p := &post.Post{Title: "Old Notice", Description: "Outdated."}
	require.NoError(t, service.CreatePost(context.Background(), p, "user-1"))

	require.NoError(t, service.DeletePost(context.Background(), p.Slug))
	assert.Empty(t, repo.bySlug)

	err := service.DeletePost(context.Background(), p.Slug)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

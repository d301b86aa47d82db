// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package document_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urugowoc/urugo/internal/commerce/document"
	"github.com/urugowoc/urugo/internal/platform/apperr"
	"github.com/urugowoc/urugo/internal/platform/dberr"
)

// # In-Memory Fake

type fakeDocumentRepo struct {
	byID       map[int]*document.Document
	nextID     int
	lastFilter document.Filter
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{byID: make(map[int]*document.Document), nextID: 1}
}

func (repo *fakeDocumentRepo) ListDocuments(_ context.Context, f document.Filter, _, _ int) ([]*document.Document, int, error) {
	repo.lastFilter = f
	documents := make([]*document.Document, 0, len(repo.byID))
	for _, d := range repo.byID {
		if f.Visibility != "" && d.Visibility != f.Visibility {
			continue
		}
		documents = append(documents, d)
	}
	return documents, len(documents), nil
}

func (repo *fakeDocumentRepo) GetDocument(_ context.Context, id int) (*document.Document, error) {
	if d, ok := repo.byID[id]; ok {
		return d, nil
	}
	return nil, dberr.ErrNotFound
}

func (repo *fakeDocumentRepo) CreateDocument(_ context.Context, d *document.Document, uploadedByID string) error {
	d.ID = repo.nextID
	repo.nextID++
	d.UploadedBy = &document.Uploader{ID: uploadedByID, Email: "staff@urugowoc.org"}
	repo.byID[d.ID] = d
	return nil
}

func (repo *fakeDocumentRepo) UpdateDocument(_ context.Context, d *document.Document) error {
	if _, ok := repo.byID[d.ID]; !ok {
		return dberr.ErrNotFound
	}
	repo.byID[d.ID] = d
	return nil
}

func (repo *fakeDocumentRepo) DeleteDocument(_ context.Context, id int) error {
	if _, ok := repo.byID[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(repo.byID, id)
	return nil
}

func newDocumentService() (*document.Service, *fakeDocumentRepo) {
	repo := newFakeDocumentRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return document.NewService(repo, logger), repo
}

func seedDocument(t *testing.T, service *document.Service, name, visibility string) *document.Document {
	t.Helper()
	d := &document.Document{
		FileName:     name,
		FileURL:      "https://cdn.urugowoc.org/docs/" + name,
		DocumentType: "report",
		Visibility:   visibility,
	}
	require.NoError(t, service.CreateDocument(context.Background(), d, "user-1"))
	return d
}

// # Visibility Rules

/*
TestService_ListDocuments_Anonymous verifies anonymous callers only ever see
public documents, even when they explicitly ask for private ones.
*/
func TestService_ListDocuments_Anonymous(t *testing.T) {
	service, repo := newDocumentService()
	seedDocument(t, service, "annual-report.pdf", document.VisibilityPublic)
	seedDocument(t, service, "board-minutes.pdf", document.VisibilityPrivate)

	documents, total, err := service.ListDocuments(context.Background(), document.Filter{
		Visibility: document.VisibilityPrivate,
	}, false, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, documents, 1)
	assert.Equal(t, "annual-report.pdf", documents[0].FileName)
	assert.Equal(t, document.VisibilityPublic, repo.lastFilter.Visibility)
}

/*
TestService_ListDocuments_Authenticated verifies authenticated callers keep
their requested filter, private included.
*/
func TestService_ListDocuments_Authenticated(t *testing.T) {
	service, _ := newDocumentService()
	seedDocument(t, service, "annual-report.pdf", document.VisibilityPublic)
	seedDocument(t, service, "board-minutes.pdf", document.VisibilityPrivate)

	documents, total, err := service.ListDocuments(context.Background(), document.Filter{
		Visibility: document.VisibilityPrivate,
	}, true, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	require.Len(t, documents, 1)
	assert.Equal(t, "board-minutes.pdf", documents[0].FileName)
}

/*
TestService_GetDocument_PrivateAnonymous verifies a private document looks
like a 404 to anonymous callers rather than a 403. Leaking existence would
defeat the point of hiding it.
*/
func TestService_GetDocument_PrivateAnonymous(t *testing.T) {
	service, _ := newDocumentService()
	private := seedDocument(t, service, "board-minutes.pdf", document.VisibilityPrivate)

	_, err := service.GetDocument(context.Background(), private.ID, false)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)

	// The same document is served normally once authenticated.
	found, err := service.GetDocument(context.Background(), private.ID, true)
	require.NoError(t, err)
	assert.Equal(t, private.ID, found.ID)
}

// # Creation

/*
TestService_CreateDocument verifies the default visibility and the uploader
stamp.
*/
func TestService_CreateDocument(t *testing.T) {
	service, _ := newDocumentService()

	d := &document.Document{
		FileName:     "brochure.pdf",
		FileURL:      "https://cdn.urugowoc.org/docs/brochure.pdf",
		DocumentType: "brochure",
	}
	require.NoError(t, service.CreateDocument(context.Background(), d, "user-7"))

	assert.Equal(t, document.VisibilityPublic, d.Visibility)
	require.NotNil(t, d.UploadedBy)
	assert.Equal(t, "user-7", d.UploadedBy.ID)
}

func TestService_CreateDocument_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input *document.Document
	}{
		{"missing_file_name", &document.Document{FileURL: "https://cdn.urugowoc.org/d.pdf", DocumentType: "report"}},
		{"missing_file_url", &document.Document{FileName: "d.pdf", DocumentType: "report"}},
		{"bad_file_url", &document.Document{FileName: "d.pdf", FileURL: "not-a-url", DocumentType: "report"}},
		{"bad_visibility", &document.Document{FileName: "d.pdf", FileURL: "https://cdn.urugowoc.org/d.pdf", DocumentType: "report", Visibility: "internal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newDocumentService()

			err := service.CreateDocument(context.Background(), tt.input, "user-1")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Empty(t, repo.byID)
		})
	}
}

// # Projection

/*
TestDocument_Public verifies the anonymous projection strips the uploader and
the visibility flag.
*/
func TestDocument_Public(t *testing.T) {
	service, _ := newDocumentService()
	d := seedDocument(t, service, "annual-report.pdf", document.VisibilityPrivate)

	public := d.Public()
	assert.Equal(t, d.ID, public.ID)
	assert.Equal(t, d.FileName, public.FileName)
	assert.Equal(t, d.FileURL, public.FileURL)
	assert.Equal(t, d.DocumentType, public.DocumentType)
}

// # Update & Delete

/*
TestService_UpdateDocument verifies the uploader and upload time are pinned
from the stored row.
*/
func TestService_UpdateDocument(t *testing.T) {
	service, repo := newDocumentService()
	original := seedDocument(t, service, "annual-report.pdf", document.VisibilityPublic)

	input := &document.Document{
		FileName:     "annual-report-2026.pdf",
		FileURL:      "https://cdn.urugowoc.org/docs/annual-report-2026.pdf",
		DocumentType: "report",
	}
	require.NoError(t, service.UpdateDocument(context.Background(), original.ID, input))

	stored := repo.byID[original.ID]
	assert.Equal(t, "annual-report-2026.pdf", stored.FileName)
	assert.Equal(t, document.VisibilityPublic, stored.Visibility)
	require.NotNil(t, stored.UploadedBy)
	assert.Equal(t, "user-1", stored.UploadedBy.ID)
}

func TestService_DeleteDocument_NotFound(t *testing.T) {
	service, _ := newDocumentService()

	err := service.DeleteDocument(context.Background(), 42)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package document

import (
	"context"
	"log/slog"

	"github.com/urugowoc/urugo/internal/platform/dberr"
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

// ListDocuments returns documents matching the filter. Anonymous callers are
// restricted to public documents regardless of the requested visibility.
func (service *Service) ListDocuments(context context.Context, f Filter, authenticated bool, limit, offset int) ([]*Document, int, error) {
	if !authenticated {
		f.Visibility = VisibilityPublic
	}
	return service.repo.ListDocuments(context, f, limit, offset)
}

// GetDocument returns a single document. Private documents do not exist as
// far as anonymous callers are concerned.
func (service *Service) GetDocument(context context.Context, id int, authenticated bool) (*Document, error) {
	document, err := service.repo.GetDocument(context, id)
	if err != nil {
		return nil, err
	}

	if !authenticated && document.Visibility != VisibilityPublic {
		return nil, dberr.ErrNotFound
	}
	return document, nil
}

// CreateDocument stores a new document stamped with the uploading user.
func (service *Service) CreateDocument(context context.Context, document *Document, uploadedByID string) error {
	if document.Visibility == "" {
		document.Visibility = VisibilityPublic
	}
	if err := validateDocument(document); err != nil {
		return err
	}

	if err := service.repo.CreateDocument(context, document, uploadedByID); err != nil {
		return err
	}

	service.logger.Info("document_created",
		slog.Int("document_id", document.ID),
		slog.String("visibility", document.Visibility),
		slog.String("uploaded_by", uploadedByID))
	return nil
}

func (service *Service) UpdateDocument(context context.Context, id int, document *Document) error {
	existing, err := service.repo.GetDocument(context, id)
	if err != nil {
		return err
	}

	document.ID = existing.ID
	document.UploadedBy = existing.UploadedBy
	document.UploadedAt = existing.UploadedAt
	if document.Visibility == "" {
		document.Visibility = existing.Visibility
	}
	if err := validateDocument(document); err != nil {
		return err
	}

	if err := service.repo.UpdateDocument(context, document); err != nil {
		return err
	}

	service.logger.Info("document_updated", slog.Int("document_id", document.ID))
	return nil
}

func (service *Service) DeleteDocument(context context.Context, id int) error {
	if err := service.repo.DeleteDocument(context, id); err != nil {
		return err
	}

	service.logger.Warn("document_deleted", slog.Int("document_id", id))
	return nil
}

func validateDocument(document *Document) error {
	validator := &validate.Validator{}
	validator.Required(FieldFileName, document.FileName)
	validator.MaxLen(FieldFileName, document.FileName, 255)
	validator.Required(FieldFileURL, document.FileURL)
	validator.URL(FieldFileURL, document.FileURL)
	validator.Required(FieldDocumentType, document.DocumentType)
	validator.MaxLen(FieldDocumentType, document.DocumentType, 100)
	validator.OneOf(FieldVisibility, document.Visibility, Visibilities...)

	return validator.Err()
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package document manages uploaded organizational documents (reports,
// policies, brochures). Anonymous visitors only see public documents, and
// only a reduced projection of them; authenticated users see everything.
package document

import "time"

// Document visibilities.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

var Visibilities = []string{VisibilityPublic, VisibilityPrivate}

// Document is an uploaded file with its access metadata.
type Document struct {
	ID           int       `json:"id"`
	FileName     string    `json:"file_name"`
	FileURL      string    `json:"file_url"`
	Description  *string   `json:"description"`
	DocumentType string    `json:"document_type"`
	Visibility   string    `json:"visibility"`
	UploadedBy   *Uploader `json:"uploaded_by"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Uploader is the read-only projection of the user who uploaded a document.
type Uploader struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PublicDocument is the reduced projection served to anonymous visitors.
// It omits the uploader and the visibility flag.
type PublicDocument struct {
	ID           int       `json:"id"`
	FileName     string    `json:"file_name"`
	FileURL      string    `json:"file_url"`
	Description  *string   `json:"description"`
	DocumentType string    `json:"document_type"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// Public returns the reduced projection of the document.
func (d *Document) Public() *PublicDocument {
	return &PublicDocument{
		ID:           d.ID,
		FileName:     d.FileName,
		FileURL:      d.FileURL,
		Description:  d.Description,
		DocumentType: d.DocumentType,
		UploadedAt:   d.UploadedAt,
	}
}

const (
	FieldFileName     = "file_name"
	FieldFileURL      = "file_url"
	FieldDescription  = "description"
	FieldDocumentType = "document_type"
	FieldVisibility   = "visibility"
)

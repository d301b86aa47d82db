// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package document

import "context"

// Filter holds the parameters for a paginated document search.
type Filter struct {
	DocumentType string
	Visibility   string
	Query        string
}

type Repository interface {
	ListDocuments(context context.Context, f Filter, limit, offset int) ([]*Document, int, error)
	GetDocument(context context.Context, id int) (*Document, error)
	CreateDocument(context context.Context, d *Document, uploadedByID string) error
	UpdateDocument(context context.Context, d *Document) error
	DeleteDocument(context context.Context, id int) error
}

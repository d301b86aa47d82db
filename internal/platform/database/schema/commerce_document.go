// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package schema

// CommerceDocumentTable represents the 'commerce.document' table
type CommerceDocumentTable struct {
	Table        string
	ID           string
	FileName     string
	FileURL      string
	Description  string
	DocumentType string
	Visibility   string
	UploadedByID string
	UploadedAt   string
}

// CommerceDocument is the schema definition for commerce.document
var CommerceDocument = CommerceDocumentTable{
	Table:        "commerce.document",
	ID:           "id",
	FileName:     "file_name",
	FileURL:      "file_url",
	Description:  "description",
	DocumentType: "document_type",
	Visibility:   "visibility",
	UploadedByID: "uploaded_by_id",
	UploadedAt:   "uploaded_at",
}

// Columns returns all standard column names
func (t CommerceDocumentTable) Columns() []string {
	return []string{
		t.ID, t.FileName, t.FileURL, t.Description, t.DocumentType,
		t.Visibility, t.UploadedByID, t.UploadedAt,
	}
}

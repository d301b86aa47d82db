// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package document

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/database/schema"
	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var documentColumns = fmt.Sprintf(`
	d.%s, d.%s, d.%s, d.%s, d.%s, d.%s, d.%s,
	a.%s, a.%s, a.%s, a.%s`,
	schema.CommerceDocument.ID, schema.CommerceDocument.FileName, schema.CommerceDocument.FileURL,
	schema.CommerceDocument.Description, schema.CommerceDocument.DocumentType,
	schema.CommerceDocument.Visibility, schema.CommerceDocument.UploadedAt,
	schema.UserAccount.ID, schema.UserAccount.Email,
	schema.UserAccount.FirstName, schema.UserAccount.LastName,
)

var documentFrom = fmt.Sprintf(`
	FROM %s d
	LEFT JOIN %s a ON a.%s = d.%s`,
	schema.CommerceDocument.Table, schema.UserAccount.Table,
	schema.UserAccount.ID, schema.CommerceDocument.UploadedByID,
)

func scanDocument(row pgx.Row) (*Document, error) {
	document := &Document{}
	var uploaderID, uploaderEmail, uploaderFirst, uploaderLast *string

	err := row.Scan(
		&document.ID, &document.FileName, &document.FileURL, &document.Description,
		&document.DocumentType, &document.Visibility, &document.UploadedAt,
		&uploaderID, &uploaderEmail, &uploaderFirst, &uploaderLast,
	)
	if err != nil {
		return nil, err
	}

	if uploaderID != nil {
		document.UploadedBy = &Uploader{
			ID:        *uploaderID,
			Email:     *uploaderEmail,
			FirstName: *uploaderFirst,
			LastName:  *uploaderLast,
		}
	}
	return document, nil
}

func (repository *PostgresRepository) ListDocuments(context context.Context, f Filter, limit, offset int) ([]*Document, int, error) {
	query := `SELECT ` + documentColumns + documentFrom + ` WHERE TRUE`
	countQuery := `SELECT count(*) FROM ` + schema.CommerceDocument.Table + ` d WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.DocumentType != "" {
		addClause(`d.`+schema.CommerceDocument.DocumentType+` =`, f.DocumentType)
	}
	if f.Visibility != "" {
		addClause(`d.`+schema.CommerceDocument.Visibility+` =`, f.Visibility)
	}
	if f.Query != "" {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		clause := ` AND (d.` + schema.CommerceDocument.FileName + ` ILIKE ` + placeholder +
			` OR d.` + schema.CommerceDocument.Description + ` ILIKE ` + placeholder + `)`
		query += clause
		countQuery += clause
		pattern := "%" + f.Query + "%"
		args = append(args, pattern)
		countArgs = append(countArgs, pattern)
	}

	query += ` ORDER BY d.uploaded_at DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_documents")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_documents")
	}
	defer rows.Close()

	var documents []*Document
	for rows.Next() {
		document, err := scanDocument(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_document")
		}
		documents = append(documents, document)
	}

	return documents, total, nil
}

func (repository *PostgresRepository) GetDocument(context context.Context, id int) (*Document, error) {
	query := `SELECT ` + documentColumns + documentFrom + ` WHERE d.id = $1`

	document, err := scanDocument(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_document")
	}
	return document, nil
}

func (repository *PostgresRepository) CreateDocument(context context.Context, document *Document, uploadedByID string) error {
	const query = `
		INSERT INTO commerce.document (file_name, file_url, description, document_type, visibility, uploaded_by_id, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, uploaded_at`

	err := repository.db.QueryRow(context, query,
		document.FileName, document.FileURL, document.Description,
		document.DocumentType, document.Visibility, uploadedByID,
	).Scan(&document.ID, &document.UploadedAt)
	return dberr.Wrap(err, "create_document")
}

func (repository *PostgresRepository) UpdateDocument(context context.Context, document *Document) error {
	const query = `
		UPDATE commerce.document
		SET file_name = $2, file_url = $3, description = $4, document_type = $5, visibility = $6
		WHERE id = $1`

	cmd, err := repository.db.Exec(context, query,
		document.ID, document.FileName, document.FileURL, document.Description,
		document.DocumentType, document.Visibility,
	)
	if err != nil {
		return dberr.Wrap(err, "update_document")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DeleteDocument(context context.Context, id int) error {
	const query = `DELETE FROM commerce.document WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_document")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package contact

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/apperr"
	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListContacts(context context.Context, limit, offset int) ([]*Contact, int, error) {
	const countQuery = `SELECT count(*) FROM content.contact`
	const query = `
		SELECT id, phone_number, email, address, created_at, updated_at
		FROM content.contact
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contacts")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contacts")
	}
	defer rows.Close()

	var contacts []*Contact
	for rows.Next() {
		c := &Contact{}
		if err := rows.Scan(&c.ID, &c.PhoneNumber, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact")
		}
		contacts = append(contacts, c)
	}

	return contacts, total, nil
}

func (repository *PostgresRepository) GetContact(context context.Context, id int) (*Contact, error) {
	const query = `
		SELECT id, phone_number, email, address, created_at, updated_at
		FROM content.contact
		WHERE id = $1`

	c := &Contact{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&c.ID, &c.PhoneNumber, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_contact")
}

func (repository *PostgresRepository) CreateContact(context context.Context, c *Contact) error {
	const query = `
		INSERT INTO content.contact (phone_number, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, c.PhoneNumber, c.Email, c.Address).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict("Contact email already exists")
	}
	return dberr.Wrap(err, "create_contact")
}

func (repository *PostgresRepository) UpdateContact(context context.Context, c *Contact) error {
	const query = `
		UPDATE content.contact
		SET phone_number = $2, email = $3, address = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, c.ID, c.PhoneNumber, c.Email, c.Address).
		Scan(&c.UpdatedAt)

	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict("Contact email already exists")
	}
	return dberr.Wrap(err, "update_contact")
}

func (repository *PostgresRepository) DeleteContact(context context.Context, id int) error {
	const query = `DELETE FROM content.contact WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

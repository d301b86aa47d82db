// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package partner

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListPartners(context context.Context, f Filter, limit, offset int) ([]*Partner, int, error) {
	query := `
		SELECT id, name, logo_url, url, created_at, updated_at
		FROM commerce.partner
		WHERE TRUE`
	countQuery := `SELECT count(*) FROM commerce.partner WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	if f.Name != "" {
		clause := ` AND name = $` + strconv.Itoa(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Name)
		countArgs = append(countArgs, f.Name)
	}
	if f.Query != "" {
		clause := ` AND name ILIKE $` + strconv.Itoa(len(args)+1)
		query += clause
		countQuery += clause
		pattern := "%" + f.Query + "%"
		args = append(args, pattern)
		countArgs = append(countArgs, pattern)
	}

	query += ` ORDER BY id ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_partners")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_partners")
	}
	defer rows.Close()

	var partners []*Partner
	for rows.Next() {
		partner := &Partner{}
		if err := rows.Scan(&partner.ID, &partner.Name, &partner.LogoURL, &partner.URL,
			&partner.CreatedAt, &partner.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_partner")
		}
		partners = append(partners, partner)
	}

	return partners, total, nil
}

func (repository *PostgresRepository) GetPartner(context context.Context, id int) (*Partner, error) {
	const query = `
		SELECT id, name, logo_url, url, created_at, updated_at
		FROM commerce.partner
		WHERE id = $1`

	partner := &Partner{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&partner.ID, &partner.Name, &partner.LogoURL, &partner.URL,
		&partner.CreatedAt, &partner.UpdatedAt,
	)

	return partner, dberr.Wrap(err, "get_partner")
}

func (repository *PostgresRepository) CreatePartner(context context.Context, partner *Partner) error {
	const query = `
		INSERT INTO commerce.partner (name, logo_url, url, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, partner.Name, partner.LogoURL, partner.URL).
		Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
	return dberr.Wrap(err, "create_partner")
}

func (repository *PostgresRepository) UpdatePartner(context context.Context, partner *Partner) error {
	const query = `
		UPDATE commerce.partner
		SET name = $2, logo_url = $3, url = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, partner.ID, partner.Name, partner.LogoURL, partner.URL).
		Scan(&partner.UpdatedAt)
	return dberr.Wrap(err, "update_partner")
}

func (repository *PostgresRepository) DeletePartner(context context.Context, id int) error {
	const query = `DELETE FROM commerce.partner WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_partner")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package about

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListAbouts(context context.Context, limit, offset int) ([]*About, int, error) {
	const countQuery = `SELECT count(*) FROM content.about`
	const query = `
		SELECT id, title, description, created_at, updated_at
		FROM content.about
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_abouts")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_abouts")
	}
	defer rows.Close()

	var abouts []*About
	for rows.Next() {
		a := &About{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_about")
		}
		abouts = append(abouts, a)
	}

	return abouts, total, nil
}

func (repository *PostgresRepository) GetAbout(context context.Context, id int) (*About, error) {
	const query = `
		SELECT id, title, description, created_at, updated_at
		FROM content.about
		WHERE id = $1`

	a := &About{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, dberr.Wrap(err, "get_about")
}

func (repository *PostgresRepository) CreateAbout(context context.Context, a *About) error {
	const query = `
		INSERT INTO content.about (title, description, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, a.Title, a.Description).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_about")
}

func (repository *PostgresRepository) UpdateAbout(context context.Context, a *About) error {
	const query = `
		UPDATE content.about
		SET title = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, a.ID, a.Title, a.Description).
		Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_about")
}

func (repository *PostgresRepository) DeleteAbout(context context.Context, id int) error {
	const query = `DELETE FROM content.about WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_about")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package social

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

func (repository *PostgresRepository) ListSocialMedia(context context.Context, limit, offset int) ([]*SocialMedia, int, error) {
	const countQuery = `SELECT count(*) FROM content.social_media`
	const query = `
		SELECT id, name, link, created_at, updated_at
		FROM content.social_media
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_social_media")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_social_media")
	}
	defer rows.Close()

	var links []*SocialMedia
	for rows.Next() {
		s := &SocialMedia{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Link, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_social_media")
		}
		links = append(links, s)
	}

	return links, total, nil
}

func (repository *PostgresRepository) GetSocialMedia(context context.Context, id int) (*SocialMedia, error) {
	const query = `
		SELECT id, name, link, created_at, updated_at
		FROM content.social_media
		WHERE id = $1`

	s := &SocialMedia{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.Name, &s.Link, &s.CreatedAt, &s.UpdatedAt,
	)

	return s, dberr.Wrap(err, "get_social_media")
}

func (repository *PostgresRepository) CreateSocialMedia(context context.Context, s *SocialMedia) error {
	const query = `
		INSERT INTO content.social_media (name, link, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, s.Name, s.Link).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "create_social_media")
}

func (repository *PostgresRepository) UpdateSocialMedia(context context.Context, s *SocialMedia) error {
	const query = `
		UPDATE content.social_media
		SET name = $2, link = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, s.ID, s.Name, s.Link).Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_social_media")
}

func (repository *PostgresRepository) DeleteSocialMedia(context context.Context, id int) error {
	const query = `DELETE FROM content.social_media WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_social_media")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

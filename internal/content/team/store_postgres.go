// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package team

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

// # Members

func (repository *PostgresRepository) ListMembers(context context.Context, limit, offset int) ([]*Member, int, error) {
	const countQuery = `SELECT count(*) FROM content.team_member`
	const query = `
		SELECT id, name, role, image_url, created_at, updated_at
		FROM content.team_member
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_team_members")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_team_members")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_team_member")
		}
		members = append(members, m)
	}

	return members, total, nil
}

func (repository *PostgresRepository) GetMember(context context.Context, id int) (*Member, error) {
	const query = `
		SELECT id, name, role, image_url, created_at, updated_at
		FROM content.team_member
		WHERE id = $1`

	m := &Member{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&m.ID, &m.Name, &m.Role, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	)

	return m, dberr.Wrap(err, "get_team_member")
}

func (repository *PostgresRepository) CreateMember(context context.Context, m *Member) error {
	const query = `
		INSERT INTO content.team_member (name, role, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, m.Name, m.Role, m.ImageURL).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_team_member")
}

func (repository *PostgresRepository) UpdateMember(context context.Context, m *Member) error {
	const query = `
		UPDATE content.team_member
		SET name = $2, role = $3, image_url = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, m.ID, m.Name, m.Role, m.ImageURL).
		Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_team_member")
}

func (repository *PostgresRepository) DeleteMember(context context.Context, id int) error {
	const query = `DELETE FROM content.team_member WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_team_member")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Social Links

func (repository *PostgresRepository) ListSocialLinks(context context.Context, limit, offset int) ([]*SocialLink, int, error) {
	const countQuery = `SELECT count(*) FROM content.team_social_media`
	const query = `
		SELECT id, name, link, team_member_id, created_at, updated_at
		FROM content.team_social_media
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_team_social_links")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_team_social_links")
	}
	defer rows.Close()

	var links []*SocialLink
	for rows.Next() {
		l := &SocialLink{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Link, &l.TeamMemberID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_team_social_link")
		}
		links = append(links, l)
	}

	return links, total, nil
}

func (repository *PostgresRepository) GetSocialLink(context context.Context, id int) (*SocialLink, error) {
	const query = `
		SELECT id, name, link, team_member_id, created_at, updated_at
		FROM content.team_social_media
		WHERE id = $1`

	l := &SocialLink{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&l.ID, &l.Name, &l.Link, &l.TeamMemberID, &l.CreatedAt, &l.UpdatedAt,
	)

	return l, dberr.Wrap(err, "get_team_social_link")
}

func (repository *PostgresRepository) CreateSocialLink(context context.Context, l *SocialLink) error {
	const query = `
		INSERT INTO content.team_social_media (name, link, team_member_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query, l.Name, l.Link, l.TeamMemberID).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return dberr.Wrap(err, "create_team_social_link")
}

func (repository *PostgresRepository) UpdateSocialLink(context context.Context, l *SocialLink) error {
	const query = `
		UPDATE content.team_social_media
		SET name = $2, link = $3, team_member_id = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query, l.ID, l.Name, l.Link, l.TeamMemberID).
		Scan(&l.UpdatedAt)
	return dberr.Wrap(err, "update_team_social_link")
}

func (repository *PostgresRepository) DeleteSocialLink(context context.Context, id int) error {
	const query = `DELETE FROM content.team_social_media WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_team_social_link")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

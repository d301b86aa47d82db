// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package slider

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

func (repository *PostgresRepository) ListSliders(context context.Context, f Filter, limit, offset int) ([]*Slider, int, error) {
	query := `
		SELECT id, title, subtitle, image_url, action, action_text, active, created_at, updated_at
		FROM content.slider
		WHERE TRUE`
	countQuery := `SELECT count(*) FROM content.slider WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	if f.Active != nil {
		clause := ` AND active = $` + strconv.Itoa(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, *f.Active)
		countArgs = append(countArgs, *f.Active)
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_sliders")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_sliders")
	}
	defer rows.Close()

	var sliders []*Slider
	for rows.Next() {
		s := &Slider{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.Action,
			&s.ActionText, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_slider")
		}
		sliders = append(sliders, s)
	}

	return sliders, total, nil
}

func (repository *PostgresRepository) GetSlider(context context.Context, id int) (*Slider, error) {
	const query = `
		SELECT id, title, subtitle, image_url, action, action_text, active, created_at, updated_at
		FROM content.slider
		WHERE id = $1`

	s := &Slider{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&s.ID, &s.Title, &s.Subtitle, &s.ImageURL, &s.Action,
		&s.ActionText, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)

	return s, dberr.Wrap(err, "get_slider")
}

func (repository *PostgresRepository) CreateSlider(context context.Context, s *Slider) error {
	const query = `
		INSERT INTO content.slider (title, subtitle, image_url, action, action_text, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		s.Title, s.Subtitle, s.ImageURL, s.Action, s.ActionText, s.Active).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return dberr.Wrap(err, "create_slider")
}

func (repository *PostgresRepository) UpdateSlider(context context.Context, s *Slider) error {
	const query = `
		UPDATE content.slider
		SET title = $2, subtitle = $3, image_url = $4, action = $5, action_text = $6, active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		s.ID, s.Title, s.Subtitle, s.ImageURL, s.Action, s.ActionText, s.Active).
		Scan(&s.UpdatedAt)
	return dberr.Wrap(err, "update_slider")
}

func (repository *PostgresRepository) DeleteSlider(context context.Context, id int) error {
	const query = `DELETE FROM content.slider WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_slider")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

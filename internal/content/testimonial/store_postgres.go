// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package testimonial

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

func (repository *PostgresRepository) ListTestimonials(context context.Context, limit, offset int) ([]*Testimonial, int, error) {
	const countQuery = `SELECT count(*) FROM content.testimonial`
	const query = `
		SELECT id, name, role, message, image_url, created_at, updated_at
		FROM content.testimonial
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_testimonials")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_testimonials")
	}
	defer rows.Close()

	var testimonials []*Testimonial
	for rows.Next() {
		testimonial := &Testimonial{}
		if err := rows.Scan(
			&testimonial.ID, &testimonial.Name, &testimonial.Role, &testimonial.Message,
			&testimonial.ImageURL, &testimonial.CreatedAt, &testimonial.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_testimonial")
		}
		testimonials = append(testimonials, testimonial)
	}

	return testimonials, total, nil
}

func (repository *PostgresRepository) GetTestimonial(context context.Context, id int) (*Testimonial, error) {
	const query = `
		SELECT id, name, role, message, image_url, created_at, updated_at
		FROM content.testimonial
		WHERE id = $1`

	testimonial := &Testimonial{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&testimonial.ID, &testimonial.Name, &testimonial.Role, &testimonial.Message,
		&testimonial.ImageURL, &testimonial.CreatedAt, &testimonial.UpdatedAt,
	)

	return testimonial, dberr.Wrap(err, "get_testimonial")
}

func (repository *PostgresRepository) CreateTestimonial(context context.Context, testimonial *Testimonial) error {
	const query = `
		INSERT INTO content.testimonial (name, role, message, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		testimonial.Name, testimonial.Role, testimonial.Message, testimonial.ImageURL,
	).Scan(&testimonial.ID, &testimonial.CreatedAt, &testimonial.UpdatedAt)
	return dberr.Wrap(err, "create_testimonial")
}

func (repository *PostgresRepository) UpdateTestimonial(context context.Context, testimonial *Testimonial) error {
	const query = `
		UPDATE content.testimonial
		SET name = $2, role = $3, message = $4, image_url = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		testimonial.ID, testimonial.Name, testimonial.Role, testimonial.Message, testimonial.ImageURL,
	).Scan(&testimonial.UpdatedAt)
	return dberr.Wrap(err, "update_testimonial")
}

func (repository *PostgresRepository) DeleteTestimonial(context context.Context, id int) error {
	const query = `DELETE FROM content.testimonial WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_testimonial")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

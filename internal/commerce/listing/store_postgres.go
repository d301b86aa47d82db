// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package listing

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

var listingColumns = fmt.Sprintf(`
	%s, %s, %s, %s, %s, %s, %s,
	%s, %s, %s, %s, %s, %s, %s, %s`,
	schema.CommerceListing.ID, schema.CommerceListing.Title, schema.CommerceListing.Slug,
	schema.CommerceListing.ShortDesc, schema.CommerceListing.Description,
	schema.CommerceListing.PosterURL, schema.CommerceListing.ImageURL,
	schema.CommerceListing.Type, schema.CommerceListing.Category, schema.CommerceListing.Price,
	schema.CommerceListing.TimeFrame, schema.CommerceListing.Available, schema.CommerceListing.InUse,
	schema.CommerceListing.CreatedAt, schema.CommerceListing.UpdatedAt,
)

func scanListing(row pgx.Row) (*Listing, error) {
	listing := &Listing{}
	err := row.Scan(
		&listing.ID, &listing.Title, &listing.Slug, &listing.ShortDesc, &listing.Description,
		&listing.PosterURL, &listing.ImageURL, &listing.Type, &listing.Category, &listing.Price,
		&listing.TimeFrame, &listing.Available, &listing.InUse, &listing.CreatedAt, &listing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (repository *PostgresRepository) ListListings(context context.Context, f Filter, limit, offset int) ([]*Listing, int, error) {
	query := `SELECT ` + listingColumns + ` FROM ` + schema.CommerceListing.Table + ` WHERE TRUE`
	countQuery := `SELECT count(*) FROM ` + schema.CommerceListing.Table + ` WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.Type != "" {
		addClause(schema.CommerceListing.Type+` =`, f.Type)
	}
	if f.Available != nil {
		addClause(schema.CommerceListing.Available+` =`, *f.Available)
	}
	if f.Query != "" {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		clause := ` AND (` + schema.CommerceListing.Title + ` ILIKE ` + placeholder +
			` OR ` + schema.CommerceListing.Slug + ` ILIKE ` + placeholder +
			` OR ` + schema.CommerceListing.Description + ` ILIKE ` + placeholder + `)`
		query += clause
		countQuery += clause
		pattern := "%" + f.Query + "%"
		args = append(args, pattern)
		countArgs = append(countArgs, pattern)
	}

	query += ` ORDER BY ` + schema.CommerceListing.CreatedAt + ` ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_listings")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_listings")
	}
	defer rows.Close()

	var listings []*Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_listing")
		}
		listings = append(listings, listing)
	}

	return listings, total, nil
}

func (repository *PostgresRepository) GetListingBySlug(context context.Context, slug string) (*Listing, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		listingColumns, schema.CommerceListing.Table, schema.CommerceListing.Slug)

	listing, err := scanListing(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_listing")
	}
	return listing, nil
}

func (repository *PostgresRepository) GetListingByID(context context.Context, id int) (*Listing, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		listingColumns, schema.CommerceListing.Table, schema.CommerceListing.ID)

	listing, err := scanListing(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_listing")
	}
	return listing, nil
}

func (repository *PostgresRepository) CreateListing(context context.Context, listing *Listing) error {
	const query = `
		INSERT INTO commerce.listing
			(title, slug, short_desc, description, poster_url, image_url, type, category,
			 price, time_frame, available, in_use, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		listing.Title, listing.Slug, listing.ShortDesc, listing.Description, listing.PosterURL,
		listing.ImageURL, listing.Type, listing.Category, listing.Price, listing.TimeFrame,
		listing.Available, listing.InUse,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
	return dberr.Wrap(err, "create_listing")
}

func (repository *PostgresRepository) UpdateListing(context context.Context, listing *Listing) error {
	const query = `
		UPDATE commerce.listing
		SET title = $2, short_desc = $3, description = $4, poster_url = $5, image_url = $6,
			type = $7, category = $8, price = $9, time_frame = $10, available = $11,
			in_use = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		listing.ID, listing.Title, listing.ShortDesc, listing.Description, listing.PosterURL,
		listing.ImageURL, listing.Type, listing.Category, listing.Price, listing.TimeFrame,
		listing.Available, listing.InUse,
	).Scan(&listing.UpdatedAt)
	return dberr.Wrap(err, "update_listing")
}

func (repository *PostgresRepository) DeleteListingBySlug(context context.Context, slug string) error {
	const query = `DELETE FROM commerce.listing WHERE slug = $1`

	cmd, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, "delete_listing")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

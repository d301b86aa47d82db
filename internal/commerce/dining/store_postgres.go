// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package dining

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Areas

const areaColumns = `
	id, title, slug, short_desc, description, poster_url, image_url,
	location, category, in_use, created_at, updated_at`

func scanArea(row pgx.Row) (*Area, error) {
	area := &Area{}
	err := row.Scan(
		&area.ID, &area.Title, &area.Slug, &area.ShortDesc, &area.Description,
		&area.PosterURL, &area.ImageURL, &area.Location, &area.Category, &area.InUse,
		&area.CreatedAt, &area.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return area, nil
}

func (repository *PostgresRepository) ListAreas(context context.Context, f AreaFilter, limit, offset int) ([]*Area, int, error) {
	query := `SELECT ` + areaColumns + ` FROM commerce.dining_area WHERE TRUE`
	countQuery := `SELECT count(*) FROM commerce.dining_area WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.Title != "" {
		addClause(`title =`, f.Title)
	}
	if f.Slug != "" {
		addClause(`slug =`, f.Slug)
	}
	if f.Query != "" {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		clause := ` AND (title ILIKE ` + placeholder +
			` OR slug ILIKE ` + placeholder +
			` OR location ILIKE ` + placeholder + `)`
		query += clause
		countQuery += clause
		pattern := "%" + f.Query + "%"
		args = append(args, pattern)
		countArgs = append(countArgs, pattern)
	}

	query += ` ORDER BY created_at ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_dining_areas")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_dining_areas")
	}
	defer rows.Close()

	var areas []*Area
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_dining_area")
		}
		areas = append(areas, area)
	}

	return areas, total, nil
}

func (repository *PostgresRepository) GetAreaBySlug(context context.Context, slug string) (*Area, error) {
	query := `SELECT ` + areaColumns + ` FROM commerce.dining_area WHERE slug = $1`

	area, err := scanArea(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_dining_area")
	}
	return area, nil
}

func (repository *PostgresRepository) CreateArea(context context.Context, area *Area) error {
	const query = `
		INSERT INTO commerce.dining_area
			(title, slug, short_desc, description, poster_url, image_url, location, category, in_use, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		area.Title, area.Slug, area.ShortDesc, area.Description, area.PosterURL,
		area.ImageURL, area.Location, area.Category, area.InUse,
	).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
	return dberr.Wrap(err, "create_dining_area")
}

func (repository *PostgresRepository) UpdateArea(context context.Context, area *Area) error {
	const query = `
		UPDATE commerce.dining_area
		SET title = $2, short_desc = $3, description = $4, poster_url = $5, image_url = $6,
			location = $7, category = $8, in_use = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		area.ID, area.Title, area.ShortDesc, area.Description, area.PosterURL,
		area.ImageURL, area.Location, area.Category, area.InUse,
	).Scan(&area.UpdatedAt)
	return dberr.Wrap(err, "update_dining_area")
}

func (repository *PostgresRepository) DeleteAreaBySlug(context context.Context, slug string) error {
	const query = `DELETE FROM commerce.dining_area WHERE slug = $1`

	cmd, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, "delete_dining_area")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// # Bookings

const bookingColumns = `id, user_id, dining_id, guests, booking_time, created_at, updated_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	booking := &Booking{}
	err := row.Scan(
		&booking.ID, &booking.UserID, &booking.DiningID, &booking.Guests,
		&booking.BookingTime, &booking.CreatedAt, &booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (repository *PostgresRepository) ListBookings(context context.Context, f BookingFilter, limit, offset int) ([]*Booking, int, error) {
	query := `SELECT ` + bookingColumns + ` FROM commerce.dining_booking WHERE TRUE`
	countQuery := `SELECT count(*) FROM commerce.dining_booking WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.DiningID != nil {
		addClause(`dining_id =`, *f.DiningID)
	}
	if f.UserID != "" {
		addClause(`user_id =`, f.UserID)
	}

	query += ` ORDER BY booking_time ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_dining_bookings")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_dining_bookings")
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_dining_booking")
		}
		bookings = append(bookings, booking)
	}

	return bookings, total, nil
}

func (repository *PostgresRepository) GetBooking(context context.Context, id int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM commerce.dining_booking WHERE id = $1`

	booking, err := scanBooking(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_dining_booking")
	}
	return booking, nil
}

func (repository *PostgresRepository) CreateBooking(context context.Context, booking *Booking) error {
	const query = `
		INSERT INTO commerce.dining_booking (user_id, dining_id, guests, booking_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := repository.db.QueryRow(context, query,
		booking.UserID, booking.DiningID, booking.Guests, booking.BookingTime,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	return dberr.Wrap(err, "create_dining_booking")
}

func (repository *PostgresRepository) UpdateBooking(context context.Context, booking *Booking) error {
	const query = `
		UPDATE commerce.dining_booking
		SET dining_id = $2, guests = $3, booking_time = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.db.QueryRow(context, query,
		booking.ID, booking.DiningID, booking.Guests, booking.BookingTime,
	).Scan(&booking.UpdatedAt)
	return dberr.Wrap(err, "update_dining_booking")
}

func (repository *PostgresRepository) DeleteBooking(context context.Context, id int) error {
	const query = `DELETE FROM commerce.dining_booking WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_dining_booking")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

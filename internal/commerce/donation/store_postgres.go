// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package donation

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

const donationColumns = `id, names, email, phone_number, amount, donated_at`

func scanDonation(row pgx.Row) (*Donation, error) {
	donation := &Donation{}
	err := row.Scan(
		&donation.ID, &donation.Names, &donation.Email, &donation.PhoneNumber,
		&donation.Amount, &donation.DonatedAt,
	)
	if err != nil {
		return nil, err
	}
	return donation, nil
}

func (repository *PostgresRepository) ListDonations(context context.Context, f Filter, limit, offset int) ([]*Donation, int, error) {
	query := `SELECT ` + donationColumns + ` FROM commerce.donation WHERE TRUE`
	countQuery := `SELECT count(*) FROM commerce.donation WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.Amount != nil {
		addClause(`amount =`, *f.Amount)
	}
	if f.Email != "" {
		addClause(`email =`, f.Email)
	}
	if f.Query != "" {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		clause := ` AND (names ILIKE ` + placeholder + ` OR email ILIKE ` + placeholder + `)`
		query += clause
		countQuery += clause
		pattern := "%" + f.Query + "%"
		args = append(args, pattern)
		countArgs = append(countArgs, pattern)
	}

	query += ` ORDER BY donated_at ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_donations")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_donations")
	}
	defer rows.Close()

	var donations []*Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_donation")
		}
		donations = append(donations, donation)
	}

	return donations, total, nil
}

func (repository *PostgresRepository) GetDonation(context context.Context, id int) (*Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM commerce.donation WHERE id = $1`

	donation, err := scanDonation(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_donation")
	}
	return donation, nil
}

func (repository *PostgresRepository) CreateDonation(context context.Context, donation *Donation) error {
	const query = `
		INSERT INTO commerce.donation (names, email, phone_number, amount, donated_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, donated_at`

	err := repository.db.QueryRow(context, query,
		donation.Names, donation.Email, donation.PhoneNumber, donation.Amount,
	).Scan(&donation.ID, &donation.DonatedAt)
	return dberr.Wrap(err, "create_donation")
}

func (repository *PostgresRepository) UpdateDonation(context context.Context, donation *Donation) error {
	const query = `
		UPDATE commerce.donation
		SET names = $2, email = $3, phone_number = $4, amount = $5
		WHERE id = $1
		RETURNING donated_at`

	err := repository.db.QueryRow(context, query,
		donation.ID, donation.Names, donation.Email, donation.PhoneNumber, donation.Amount,
	).Scan(&donation.DonatedAt)
	return dberr.Wrap(err, "update_donation")
}

func (repository *PostgresRepository) DeleteDonation(context context.Context, id int) error {
	const query = `DELETE FROM commerce.donation WHERE id = $1`

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_donation")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

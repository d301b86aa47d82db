// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package account

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/urugowoc/urugo/internal/platform/database/schema"
	"github.com/urugowoc/urugo/internal/platform/dberr"
	"github.com/urugowoc/urugo/internal/users/auth"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL implementation of the Repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var userColumns = fmt.Sprintf(`
	%s, %s, %s, %s, %s, COALESCE(%s, ''),
	%s, COALESCE(%s, ''), COALESCE(%s, ''), COALESCE(%s, ''),
	%s, %s, %s, %s, %s`,
	schema.UserAccount.ID, schema.UserAccount.Email, schema.UserAccount.PasswordHash,
	schema.UserAccount.FirstName, schema.UserAccount.LastName, schema.UserAccount.PhoneNumber,
	schema.UserAccount.Role, schema.UserAccount.Title, schema.UserAccount.Bio,
	schema.UserAccount.AvatarURL, schema.UserAccount.IsStaff, schema.UserAccount.IsSuperuser,
	schema.UserAccount.IsActive, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
)

func scanUser(row pgx.Row) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&user.Role,
		&user.Title,
		&user.Bio,
		&user.AvatarURL,
		&user.IsStaff,
		&user.IsSuperuser,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

/*
List retrieves accounts matching the filter, ordered by join date.

Parameters:
  - context: context.Context
  - f: Filter (role, active flag, free-text query)
  - limit, offset: page window

Returns:
  - []*auth.User: matching accounts
  - int: total count before paging
  - error: storage errors
*/
func (repository *PostgresRepository) List(context context.Context, f Filter, limit, offset int) ([]*auth.User, int, error) {
	query := `SELECT ` + userColumns + ` FROM ` + schema.UserAccount.Table + ` WHERE TRUE`
	countQuery := `SELECT count(*) FROM ` + schema.UserAccount.Table + ` WHERE TRUE`

	args := []any{}
	countArgs := []any{}

	addClause := func(clause string, value any) {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		query += ` AND ` + clause + ` ` + placeholder
		countQuery += ` AND ` + clause + ` ` + placeholder
		args = append(args, value)
		countArgs = append(countArgs, value)
	}

	if f.Role != "" {
		addClause(schema.UserAccount.Role+` =`, f.Role)
	}
	if f.IsActive != nil {
		addClause(schema.UserAccount.IsActive+` =`, *f.IsActive)
	}
	if f.Query != "" {
		placeholder := `$` + strconv.Itoa(len(args)+1)
		clause := ` AND (` + schema.UserAccount.Email + ` ILIKE ` + placeholder +
			` OR ` + schema.UserAccount.FirstName + ` ILIKE ` + placeholder +
			` OR ` + schema.UserAccount.LastName + ` ILIKE ` + placeholder + `)`
		query += clause
		countQuery += clause
		pattern := "%" + f.Query + "%"
		args = append(args, pattern)
		countArgs = append(countArgs, pattern)
	}

	query += ` ORDER BY ` + schema.UserAccount.CreatedAt + ` ASC LIMIT $` + strconv.Itoa(len(args)+1) +
		` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.pool.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_users")
	}

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, total, nil
}

// FindByID fetches a single account by its UUID.
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}
	return user, nil
}

/*
Update persists the mutable profile fields of an existing account.

Credentials are out of scope: email and password_hash are never written here.
Empty optional fields are stored as NULL to match enrollment behavior.
*/
func (repository *PostgresRepository) Update(context context.Context, user *auth.User) error {
	const query = `
		UPDATE users.account
		SET first_name = $2, last_name = $3, phone_number = NULLIF($4, ''),
			role = $5, title = NULLIF($6, ''), bio = NULLIF($7, ''),
			avatar_url = NULLIF($8, ''), is_active = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := repository.pool.QueryRow(context, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.PhoneNumber,
		user.Role,
		user.Title,
		user.Bio,
		user.AvatarURL,
		user.IsActive,
	).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "update_user")
}

// Deactivate clears the is_active flag of an account. The row is kept so
// existing orders and published content stay attributable.
func (repository *PostgresRepository) Deactivate(context context.Context, id string) error {
	const query = `
		UPDATE users.account
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1`

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "deactivate_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

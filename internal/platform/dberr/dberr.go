// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/urugowoc/urugo/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations carry a SQLSTATE we can classify.
	// The cause is kept on the AppError so callers can still inspect the
	// underlying pgconn error (e.g. IsUniqueViolation on a wrapped error).
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		var classified *apperr.AppError
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			classified = apperr.Conflict("Resource already exists")
		case pgerrcode.ForeignKeyViolation:
			classified = apperr.ValidationError("Related resource does not exist")
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			classified = apperr.ValidationError("Invalid field value")
		}
		if classified != nil {
			classified.Cause = err
			return classified
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint violation.
//
// Repositories use this to attach a resource-specific conflict message while the
// unique index remains the single arbiter under concurrent writes.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

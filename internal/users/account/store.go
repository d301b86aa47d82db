// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package account

import (
	"context"

	"github.com/urugowoc/urugo/internal/users/auth"
)

/*
Repository defines persistence operations for account administration.

The entity is the same users.account row the auth package enrolls; this
repository only reads and mutates rows that already exist.
*/
type Repository interface {
	// List returns accounts matching the filter, ordered by join date.
	List(context context.Context, f Filter, limit, offset int) ([]*auth.User, int, error)

	// FindByID fetches a single account by its UUID.
	FindByID(context context.Context, id string) (*auth.User, error)

	// Update persists the profile fields of an existing account.
	Update(context context.Context, user *auth.User) error

	// Deactivate clears the is_active flag. The row is kept.
	Deactivate(context context.Context, id string) error
}

// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

/*
Package account implements administration of existing user accounts.

It covers listing and searching members, profile updates, and deactivation.
Accounts are never deleted; deactivation keeps the row so orders, bookings,
and published content stay attributable.

Enrollment itself lives in the auth package; this package only manages
accounts that already exist.
*/
package account

// Filter holds the parameters for a paginated account search.
type Filter struct {
	Role     string
	IsActive *bool
	Query    string
}

// UpdateInput carries a partial profile update. Nil fields are left unchanged.
type UpdateInput struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Title       *string `json:"title"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
}

// Field identifiers for validation.
const (
	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldPhoneNumber = "phone_number"
	FieldTitle       = "title"
	FieldAvatarURL   = "avatar_url"
	FieldRole        = "role"
)

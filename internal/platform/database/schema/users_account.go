// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

// Package schema centralizes column references for the tables queried with
// dynamically assembled filters. Simple fixed-shape queries keep their SQL
// inline in the repository instead.
package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Role         string
	Title        string
	Bio          string
	AvatarURL    string
	IsStaff      string
	IsSuperuser  string
	IsActive     string
	CreatedAt    string
	UpdatedAt    string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	FirstName:    "first_name",
	LastName:     "last_name",
	PhoneNumber:  "phone_number",
	Role:         "role",
	Title:        "title",
	Bio:          "bio",
	AvatarURL:    "avatar_url",
	IsStaff:      "is_staff",
	IsSuperuser:  "is_superuser",
	IsActive:     "is_active",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.PasswordHash, t.FirstName, t.LastName, t.PhoneNumber,
		t.Role, t.Title, t.Bio, t.AvatarURL, t.IsStaff, t.IsSuperuser,
		t.IsActive, t.CreatedAt, t.UpdatedAt,
	}
}

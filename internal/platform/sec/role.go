// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, including privilege elevation
	RoleSuperuser UserRole = "superuser"

	// Can publish and manage blog/event content
	RolePublisher UserRole = "publisher"

	// Default role for standard registered users
	RoleUser UserRole = "user"
)

// IsValid reports whether the role is one of the enumerated values.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperuser, RolePublisher, RoleUser:
		return true
	}
	return false
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleSuperuser:
		return 30
	case RolePublisher:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}

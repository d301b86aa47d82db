// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urugowoc/urugo/internal/platform/sec"
)

/*
TestUserRole_IsValid verifies the enumerated roles and rejects strays.
*/
func TestUserRole_IsValid(t *testing.T) {
	assert.True(t, sec.RoleSuperuser.IsValid())
	assert.True(t, sec.RolePublisher.IsValid())
	assert.True(t, sec.RoleUser.IsValid())

	assert.False(t, sec.UserRole("admin").IsValid())
	assert.False(t, sec.UserRole("").IsValid())
}

/*
TestUserRole_AtLeast verifies the role hierarchy used by route guards:
superuser > publisher > user.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"superuser_over_publisher", sec.RoleSuperuser, sec.RolePublisher, true},
		{"superuser_over_user", sec.RoleSuperuser, sec.RoleUser, true},
		{"publisher_over_user", sec.RolePublisher, sec.RoleUser, true},
		{"publisher_not_superuser", sec.RolePublisher, sec.RoleSuperuser, false},
		{"user_not_publisher", sec.RoleUser, sec.RolePublisher, false},
		{"same_role", sec.RoleUser, sec.RoleUser, true},
		{"unknown_role_below_all", sec.UserRole("ghost"), sec.RoleUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}

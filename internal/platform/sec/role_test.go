// Copyright (c) 2026 CollegeSathi. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/collegesathi/api/internal/platform/sec"
)

/*
TestRoleHierarchy verifies the role ordering used by the authorization
middleware: admin exceeds moderator exceeds student, and an unknown role
never satisfies any requirement.
*/
func TestRoleHierarchy(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_exceeds_moderator", sec.RoleAdmin, sec.RoleModerator, true},
		{"admin_exceeds_student", sec.RoleAdmin, sec.RoleStudent, true},
		{"moderator_meets_moderator", sec.RoleModerator, sec.RoleModerator, true},
		{"moderator_below_admin", sec.RoleModerator, sec.RoleAdmin, false},
		{"student_meets_student", sec.RoleStudent, sec.RoleStudent, true},
		{"student_below_moderator", sec.RoleStudent, sec.RoleModerator, false},
		{"unknown_below_student", sec.UserRole("guest"), sec.RoleStudent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}

// Copyright (c) 2026 CollegeSathi. All rights reserved.

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, including the admin panel
	RoleAdmin UserRole = "admin"

	// Can moderate reviews and news submissions
	RoleModerator UserRole = "moderator"

	// Default role for registered prospective students
	RoleStudent UserRole = "student"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-30) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleModerator:
		return 20
	case RoleStudent:
		return 10
	default:
		return 0
	}
}

// Copyright (c) 2026 Atelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access
	RoleAdmin UserRole = "admin"

	// Can ban artists, lock pages, and edit inactive or locked records
	RoleJanitor UserRole = "janitor"

	// Can create and edit artist entries
	RoleBuilder UserRole = "builder"

	// Default role for standard registered users
	RoleMember UserRole = "member"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// IsJanitor reports whether the role carries moderation privileges.
// Janitors bypass the inactive/locked edit gates on artist records.
func (r UserRole) IsJanitor() bool {
	return r.AtLeast(RoleJanitor)
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleJanitor:
		return 30
	case RoleBuilder:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}

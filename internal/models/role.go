// Package models contains data models for the portfolio backend.
package models

// Role is the privilege tier of a user account.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleContributor Role = "CONTRIBUTOR"
	RoleUser        Role = "USER"
)

// level orders roles by privilege. Unknown roles rank below USER.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleContributor:
		return 2
	case RoleUser:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether r carries at least the privilege of other.
func (r Role) AtLeast(other Role) bool {
	return r.level() >= other.level()
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r.level() > 0
}

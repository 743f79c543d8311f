// Package models contains data models for the portfolio backend.
package models

import "time"

// accountActiveWindow is the rolling window after the last login during
// which an account is still considered active. The same window marks a
// password as due for rotation.
const accountActiveWindow = 90 * 24 * time.Hour

// User represents an account that can authenticate against the backend.
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	DisplayName  string     `json:"display_name"`
	Email        string     `json:"email"`
	Role         Role       `json:"role" gorm:"type:varchar(20);not null;default:USER"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account counts as active at the given
// instant. An account that has never logged in is still active.
func (u *User) IsActive(now time.Time) bool {
	if u.LastLogin == nil {
		return true
	}
	return now.Sub(*u.LastLogin) <= accountActiveWindow
}

// PasswordStale reports whether the stored credential is older than the
// rotation window at the given instant.
func (u *User) PasswordStale(now time.Time) bool {
	return now.Sub(u.UpdatedAt) > accountActiveWindow
}

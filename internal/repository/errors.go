// Package repository provides the data access layer for the portfolio backend.
package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug is returned when saving a blog post whose slug
	// collides with an existing one.
	ErrDuplicateSlug = errors.New("duplicate slug")
	// ErrDuplicateUsername is returned when creating a user whose
	// username is already taken.
	ErrDuplicateUsername = errors.New("duplicate username")
)

package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a unique email constraint is violated.
	ErrDuplicateEmail = errors.New("email already taken")
	// ErrPostMissing is returned when a comment references a nonexistent post.
	ErrPostMissing = errors.New("post missing")
)

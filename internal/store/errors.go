package store

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when attempting to create a user with an existing ID.
	ErrUserExists = errors.New("user already exists")
	// ErrEmailExists is returned when attempting to create a user with an email that's already in use.
	ErrEmailExists = errors.New("email already in use")
	// ErrSessionNotFound is returned when a session cannot be found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session expired")
	// ErrBookNotFound is returned when a book cannot be found by ID.
	ErrBookNotFound = errors.New("book not found")
	// ErrCategoryNotFound is returned when a category cannot be found by ID or slug.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrCategoryExists is returned when a category slug is already in use.
	ErrCategoryExists = errors.New("category already exists")
)

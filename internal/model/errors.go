package model

import "errors"

// Common errors used across the application
var (
	// Identity errors
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Session errors
	ErrNotAuthenticated = errors.New("no active session")

	// Theme errors
	ErrInvalidTheme = errors.New("invalid theme")
)

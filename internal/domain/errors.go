package domain

import "errors"

// Auth errors. Lookup failure and password mismatch both collapse into
// ErrInvalidCredentials so responses never reveal which check failed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// Input validation
var (
	ErrValidation = errors.New("email and password are required")
)

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required request field is
	// missing.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStoreFailure wraps any error coming from the store layer.
	ErrStoreFailure = errors.New("store failure")

	// ErrPasswordHashing is returned when bcrypt fails to hash a password.
	ErrPasswordHashing = errors.New("password hashing failed")
)

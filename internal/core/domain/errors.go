package domain

import "errors"

var (
	// ErrInvalidCredentials covers every login failure: unknown email,
	// account without a local password, or a wrong password. Callers must
	// not be able to tell the cases apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a request carries no usable session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound is returned when a record id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUserExists is returned when creating a user with a taken email.
	ErrUserExists = errors.New("user already exists")

	// ErrAlreadySubscribed is returned when a newsletter email is already
	// present in the subscriber sheet.
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

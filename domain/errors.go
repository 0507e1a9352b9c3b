package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or rejected credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoSession indicates an operation needs a signed-in user but the
	// stored session has no token or no user record.
	ErrNoSession = errors.New("no session")

	// ErrLikeInFlight indicates a like toggle for the same confession is
	// still waiting on the backend.
	ErrLikeInFlight = errors.New("like already in flight")

	// ErrEmptyConfession indicates the user submitted an empty confession.
	ErrEmptyConfession = errors.New("confession cannot be empty")

	// ErrInvalidInput wraps form validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

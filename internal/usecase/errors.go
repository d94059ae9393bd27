package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrInvariantViolation marks data that is corrupt rather than
	// transiently unavailable, e.g. a partial winner set. Retrying does not
	// help; the key needs manual repair.
	ErrInvariantViolation = errors.New("invariant violation")
)

package databases

import "errors"

// Sentinel errors shared by the mongo and in-memory implementations so
// callers never depend on driver error types.
var (
	// ErrNotFound means no document matched.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSlug is a retryable conflict: another invitation already
	// holds the slug. Callers retry with a fresh slug.
	ErrDuplicateSlug = errors.New("duplicate url slug")

	// ErrDuplicateEmail means an account already exists for the email.
	ErrDuplicateEmail = errors.New("duplicate email")
)

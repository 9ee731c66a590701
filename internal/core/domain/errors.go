package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoCredentials indicates no username/token pair is configured.
	ErrNoCredentials = errors.New("credentials not configured")

	// ErrAuthInvalid indicates the configured token was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrUserNotFound indicates the requested GitHub user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRepoNotFound indicates the requested repository does not exist
	// for the given owner.
	ErrRepoNotFound = errors.New("repository not found")
)

// Package apperr defines the failure taxonomy shared by services and
// repositories. Handlers translate these sentinels into HTTP status codes;
// everything below the HTTP boundary wraps them with %w.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a referenced user, movie, watchlist entry,
	// or subscription does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signals a uniqueness violation: duplicate TMDB id,
	// duplicate username, or a (user, movie) pair already on the watchlist.
	ErrConflict = errors.New("resource already exists")

	// ErrUnavailable signals that the remote catalog call failed. It is
	// deliberately distinct from ErrNotFound so a transient network fault
	// is never reported as a missing movie.
	ErrUnavailable = errors.New("remote catalog unavailable")

	// ErrValidation signals malformed caller input.
	ErrValidation = errors.New("validation failed")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Conflictf wraps ErrConflict with a formatted message.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// Unavailablef wraps ErrUnavailable with a formatted message.
func Unavailablef(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrUnavailable)...)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}

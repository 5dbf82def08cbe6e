// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"errors"

	"healthyou/internal/failure"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, validation, unknown id).
	UserError = 1

	// AuthError indicates a missing session, wrong credentials or a
	// sign-in that could not complete.
	AuthError = 2

	// BackendError indicates a backend/API/network error.
	BackendError = 3
)

// For maps an error to its exit code. Errors outside the failure taxonomy
// are treated as backend errors.
func For(err error) int {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, failure.ErrValidation):
		return UserError
	case errors.Is(err, failure.ErrAuth):
		return AuthError
	default:
		return BackendError
	}
}

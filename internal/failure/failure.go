// Package failure defines the error taxonomy shared by every page:
// network, validation and auth failures.
package failure

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork matches any failed or non-2xx remote call.
	ErrNetwork = errors.New("network failure")

	// ErrValidation matches client-side form validation errors.
	ErrValidation = errors.New("validation failure")

	// ErrAuth matches credential mismatches and missing sessions.
	ErrAuth = errors.New("auth failure")
)

// NetworkError describes a remote call that was rejected, timed out, or
// returned a body that could not be used.
type NetworkError struct {
	Op     string // GET, POST, PUT, DELETE
	URL    string
	Status int // 0 when no response was received
	Err    error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Status != 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.Status, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s %s: status %d", e.Op, e.URL, e.Status)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ValidationError reports a required field that is empty or malformed.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid is shorthand for a *ValidationError.
func Invalid(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// AuthError reports a login that did not match any account.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

func (e *AuthError) Is(target error) bool { return target == ErrAuth }

package failure

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("load reminders: %w", &NetworkError{
		Op:  "GET",
		URL: "http://example.test/Reminders",
		Err: context.DeadlineExceeded,
	})

	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "GET http://example.test/Reminders")
}

func TestNetworkError_StatusMessage(t *testing.T) {
	err := &NetworkError{Op: "DELETE", URL: "http://x/Reminders/1", Status: 404}
	assert.Equal(t, "DELETE http://x/Reminders/1: status 404", err.Error())
}

func TestValidationError(t *testing.T) {
	err := Invalid("text", "must be at least 3 characters")

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "text: must be at least 3 characters", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "text", ve.Field)
}

func TestAuthError(t *testing.T) {
	err := &AuthError{Msg: "email or password is incorrect"}
	assert.ErrorIs(t, err, ErrAuth)
	assert.NotErrorIs(t, err, ErrNetwork)
}

package exitcode

import (
	"errors"
	"fmt"
	"testing"

	"healthyou/internal/failure"
)

func TestFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"validation", failure.Invalid("time", "required"), UserError},
		{"wrapped validation", fmt.Errorf("add: %w", failure.Invalid("text", "too short")), UserError},
		{"auth", &failure.AuthError{Msg: "Email atau password salah"}, AuthError},
		{"network", &failure.NetworkError{Op: "GET", URL: "http://x", Status: 500}, BackendError},
		{"other", errors.New("boom"), BackendError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := For(tt.err); got != tt.want {
				t.Errorf("For(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"healthyou/internal/exitcode"
	"healthyou/internal/failure"
	"healthyou/internal/page"
)

// report prints err as "error: ..." and returns its exit code.
func report(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %s\n", describe(err))
	return exitcode.For(err)
}

// describe turns err into a user-facing message.
func describe(err error) string {
	if errors.Is(err, page.ErrLoginRequired) {
		return "not logged in (run: healthyou login)"
	}

	var ne *failure.NetworkError
	if errors.As(err, &ne) {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return "request timed out"
		case ne.Status == http.StatusNotFound:
			return "not found"
		default:
			return "backend error: " + err.Error()
		}
	}
	return err.Error()
}

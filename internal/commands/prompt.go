package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"healthyou/internal/failure"
)

// readPassword reads a password without echo. Replaced in tests.
var readPassword = func(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal")
	}
	fmt.Fprint(prompt, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// passwordOrPrompt returns pw, or asks for it when empty.
func passwordOrPrompt(pw string, prompt io.Writer) (string, error) {
	if pw != "" {
		return pw, nil
	}
	pw, err := readPassword(prompt)
	if err != nil || pw == "" {
		return "", failure.Invalid("password", "required")
	}
	return pw, nil
}

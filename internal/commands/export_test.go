package commands

import "io"

// SetReadPassword replaces the password prompt and returns a restore func.
func SetReadPassword(f func(io.Writer) (string, error)) func() {
	prev := readPassword
	readPassword = f
	return func() { readPassword = prev }
}

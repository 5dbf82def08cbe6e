// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"healthyou/internal/config"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a signed-in session.
	// The dispatcher refuses to run it otherwise, before any network call.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, endpoints, logger).
	// gate has been checked; it is Authenticated when NeedsAuth is true.
	// svc may be nil for commands that make no remote calls.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int
}

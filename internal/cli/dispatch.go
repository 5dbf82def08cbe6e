// Package cli parses the command line and dispatches to registered
// commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"healthyou/internal/commands"
	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/logging"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

// DefaultCommand runs when no arguments are given.
const DefaultCommand = "dashboard"

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (service.Service, error)

// SessionOpener opens the session store for cfg.
type SessionOpener func(ctx context.Context, cfg *config.Config) (session.Store, error)

// OpenSQLiteSession opens session.db in the config directory.
func OpenSQLiteSession(ctx context.Context, cfg *config.Config) (session.Store, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, err
	}
	return session.OpenSQLite(ctx, cfg.SessionPath())
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	sessions SessionOpener
}

// NewDispatcher creates a new dispatcher with the given registry, service
// factory and session opener. A nil opener uses OpenSQLiteSession.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, sessions SessionOpener) *Dispatcher {
	if sessions == nil {
		sessions = OpenSQLiteSession
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		sessions: sessions,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dashboard with a random topic
	if len(args) == 0 {
		return d.dispatch(ctx, DefaultCommand, nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", flagError(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	cfg.Logger = logging.New(errOut, debug)
	defer func() { _ = cfg.Logger.Sync() }()

	if err := cfg.Load(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Logger.Debug("config loaded",
		zap.String("dir", cfg.Dir),
		zap.String("command", cmd.Name()),
	)

	store, err := d.sessions(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to open session: %v\n", err)
		return exitcode.BackendError
	}
	defer store.Close()
	gate := session.NewGate(store)

	// Gated commands stop here, before any remote call
	if cmd.NeedsAuth() {
		state, err := gate.Check(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: failed to read session: %v\n", err)
			return exitcode.BackendError
		}
		cfg.Logger.Debug("session checked", zap.Stringer("state", state))
		if state != session.Authenticated {
			fmt.Fprintln(errOut, "error: not logged in (run: healthyou login)")
			return exitcode.AuthError
		}
	}

	var svc service.Service
	if d.factory != nil {
		svc, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: backend error: %s\n", err)
			return exitcode.BackendError
		}
	}

	return cmd.Run(ctx, cfg, gate, svc, positionalArgs, out, errOut)
}

// flagError rewrites flag package errors into the CLI's wording.
func flagError(err error) string {
	errStr := err.Error()

	// Missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "flag needs an argument: " + flagName
	}

	// Unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		return "unknown flag: " + strings.TrimPrefix(errStr, "flag provided but not defined: ")
	}

	return errStr
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Clear the stored session" }
func (c *LogoutCmd) Usage() string     { return "healthyou logout [common flags]" }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	state, err := gate.Check(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read session: %v\n", err)
		return exitcode.BackendError
	}

	// Clear even when signed out so leftover keys go too.
	if err := gate.SignOut(ctx); err != nil {
		fmt.Fprintf(errOut, "error: failed to clear session: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		if state == session.Authenticated {
			fmt.Fprintln(out, "ok")
		} else {
			fmt.Fprintln(out, "not logged in")
		}
	}
	return exitcode.Success
}

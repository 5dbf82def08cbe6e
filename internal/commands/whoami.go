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
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the signed-in user.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Show the signed-in user" }
func (c *WhoamiCmd) Usage() string     { return "healthyou whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := requireSession(ctx, gate); err != nil {
		return report(errOut, err)
	}
	u := gate.User()
	if u.Name == "" {
		fmt.Fprintln(out, u.Email)
	} else {
		fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
	}
	return exitcode.Success
}

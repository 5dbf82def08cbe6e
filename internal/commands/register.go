package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/identity"
	"healthyou/internal/records"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd creates an account. It does not sign in.
type RegisterCmd struct {
	name     string
	email    string
	password string
}

// SetFields sets the flag values (for testing).
func (c *RegisterCmd) SetFields(name, email, password string) {
	c.name, c.email, c.password = name, email, password
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "healthyou register [common flags] --name <name> --email <email> [--password <pw>]"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.name, "name", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	acc := records.Account{Name: c.name, Email: c.email, Password: c.password}
	if acc.Password == "" {
		acc.Password = "-" // placeholder so field checks run before prompting
		if err := acc.Validate(); err != nil {
			return report(errOut, err)
		}
		pw, err := passwordOrPrompt("", errOut)
		if err != nil {
			return report(errOut, err)
		}
		acc.Password = pw
	}

	if _, err := identity.Register(ctx, svc.Accounts(), acc); err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok (run: healthyou login)")
	}
	return exitcode.Success
}

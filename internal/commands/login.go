package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/failure"
	"healthyou/internal/identity"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email    string
	password string
	google   bool
}

// SetCredentials sets the flag values (for testing).
func (c *LoginCmd) SetCredentials(email, password string) {
	c.email, c.password, c.google = email, password, false
}

// SetGoogle selects Google sign-in (for testing).
func (c *LoginCmd) SetGoogle(on bool) { c.google = on }

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Sign in with email and password, or with Google" }
func (c *LoginCmd) Usage() string {
	return "healthyou login [common flags] [--email <email> [--password <pw>] | --google]"
}
func (c *LoginCmd) NeedsAuth() bool { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.BoolVar(&c.google, "google", false, "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	state, err := gate.Check(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to read session: %v\n", err)
		return exitcode.BackendError
	}
	if state == session.Authenticated {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	var provider identity.Provider
	if c.google {
		if c.email != "" || c.password != "" {
			fmt.Fprintln(errOut, "error: use either --google or --email")
			return exitcode.UserError
		}
		oauthConfig, err := identity.LoadGoogleConfig(cfg.OAuthClientPath())
		if errors.Is(err, identity.ErrNoOAuthClient) {
			printOAuthSetup(errOut, cfg.Dir)
			return exitcode.AuthError
		}
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.AuthError
		}
		provider = &identity.Google{Config: oauthConfig, Prompt: errOut, Log: cfg.Logger}
	} else {
		if c.email == "" {
			fmt.Fprintln(errOut, "error: email required (or use --google)")
			return exitcode.UserError
		}
		pw, err := passwordOrPrompt(c.password, errOut)
		if err != nil {
			return report(errOut, err)
		}
		provider = identity.Credentials{Accounts: svc.Accounts(), Email: c.email, Password: pw}
	}

	id, err := provider.SignIn(ctx)
	if err != nil {
		if errors.Is(err, failure.ErrNetwork) && !c.google {
			fmt.Fprintln(errOut, "error: "+identity.MsgLoginFailed)
			return exitcode.For(err)
		}
		return report(errOut, err)
	}

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.AuthError
	}
	if err := gate.SignIn(ctx, id.User()); err != nil {
		fmt.Fprintf(errOut, "error: failed to save session: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func printOAuthSetup(errOut io.Writer, dir string) {
	fmt.Fprintf(errOut, "error: %s not found in %s\n\n", config.OAuthClientFile, dir)
	fmt.Fprintln(errOut, "To sign in with Google, you need OAuth credentials:")
	fmt.Fprintln(errOut, "")
	fmt.Fprintln(errOut, "1. Go to https://console.cloud.google.com/apis/credentials")
	fmt.Fprintln(errOut, "2. Create a project (or select an existing one)")
	fmt.Fprintln(errOut, "3. Create OAuth 2.0 credentials:")
	fmt.Fprintln(errOut, "   - Click 'Create Credentials' > 'OAuth client ID'")
	fmt.Fprintln(errOut, "   - Choose 'Desktop app' as application type")
	fmt.Fprintln(errOut, "   - Download the JSON file")
	fmt.Fprintln(errOut, "4. Save it as:")
	fmt.Fprintf(errOut, "   %s/%s\n", dir, config.OAuthClientFile)
	fmt.Fprintln(errOut, "")
	fmt.Fprintln(errOut, "Then run 'healthyou login --google' again.")
}

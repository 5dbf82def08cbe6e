package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/menu"
	"healthyou/internal/output"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

func init() {
	Register(&MenuCmd{})
}

// MenuCmd prints today's nutrition menu, a named day, or the whole week.
type MenuCmd struct {
	day  string
	week bool
	now  func() time.Time
}

// SetClock sets the clock used for "today" (for testing).
func (c *MenuCmd) SetClock(now func() time.Time) { c.now = now }

// SetOptions sets the flag values (for testing).
func (c *MenuCmd) SetOptions(day string, week bool) { c.day, c.week = day, week }

func (c *MenuCmd) Name() string      { return "menu" }
func (c *MenuCmd) Aliases() []string { return nil }
func (c *MenuCmd) Synopsis() string  { return "Show the nutrition menu" }
func (c *MenuCmd) Usage() string     { return "healthyou menu [common flags] [--day <hari>] [--week]" }
func (c *MenuCmd) NeedsAuth() bool   { return true }

func (c *MenuCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.day, "day", "", "")
	fs.BoolVar(&c.week, "week", false, "")
}

func (c *MenuCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if c.week && c.day != "" {
		fmt.Fprintln(errOut, "error: use either --day or --week")
		return exitcode.UserError
	}
	if err := requireSession(ctx, gate); err != nil {
		return report(errOut, err)
	}

	switch {
	case c.week:
		for _, e := range menu.Week() {
			output.FormatMenu(out, e)
		}
	case c.day != "":
		e, err := menu.Lookup(c.day)
		if err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
		output.FormatMenu(out, e)
	default:
		output.FormatMenu(out, menu.Selector{Now: c.now}.Today())
	}
	return exitcode.Success
}

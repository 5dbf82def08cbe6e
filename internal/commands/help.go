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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "healthyou help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  healthyou                                          Show the dashboard
  healthyou dashboard [common flags] [query...]      Search health articles
  healthyou menu [common flags] [--day <hari>] [--week]
  healthyou reminders [common flags]
  healthyou addreminder [common flags] --time <HH:MM> --category <makan|minum|tidur>
                        [--via <email|whatsapp>] --contact <addr> <text...>
  healthyou rmreminder [common flags] <id>
  healthyou profiles [common flags]
  healthyou addprofile [common flags] --name <name> [--age <n>] [--height <cm>] [--weight <kg>] [--avatar <url>]
  healthyou editprofile [common flags] [--name ...] [--age ...] [--height ...] [--weight ...] <id>
  healthyou rmprofile [common flags] <id>
  healthyou posts [common flags]
  healthyou post [common flags] [--image <url>] [--template <n>] <text...>
  healthyou rmpost [common flags] <id>
  healthyou sharepost [common flags] <id>
  healthyou templates
  healthyou register [common flags] --name <name> --email <email> [--password <pw>]
  healthyou login [common flags] [--email <email> [--password <pw>] | --google]
  healthyou logout [common flags]
  healthyou whoami [common flags]
  healthyou help
  healthyou version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

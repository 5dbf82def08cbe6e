package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"healthyou/internal/articles"
	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/output"
	"healthyou/internal/service"
	"healthyou/internal/session"
)

func init() {
	Register(&DashboardCmd{})
}

// DashboardCmd greets the user and shows health articles for a query, or
// for a random topic when none is given.
type DashboardCmd struct {
	rand *rand.Rand
}

// SetRand sets the topic source (for testing).
func (c *DashboardCmd) SetRand(r *rand.Rand) { c.rand = r }

func (c *DashboardCmd) Name() string      { return "dashboard" }
func (c *DashboardCmd) Aliases() []string { return []string{"articles"} }
func (c *DashboardCmd) Synopsis() string  { return "Show health articles" }
func (c *DashboardCmd) Usage() string     { return "healthyou dashboard [common flags] [query...]" }
func (c *DashboardCmd) NeedsAuth() bool   { return true }

func (c *DashboardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DashboardCmd) Run(ctx context.Context, cfg *config.Config, gate *session.Gate, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := requireSession(ctx, gate); err != nil {
		return report(errOut, err)
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		query = articles.RandomKeyword(c.rand)
	}
	cfg.Logger.Debug("dashboard search", zap.String("query", query))

	hits, err := svc.Articles().Search(ctx, query)
	if err != nil {
		return report(errOut, err)
	}

	if !cfg.Quiet {
		if name := gate.User().Name; name != "" {
			fmt.Fprintf(out, "Halo, %s!\n", name)
		}
		output.FormatHeader(out, "Artikel: "+query)
	}
	if len(hits) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no articles found")
		}
		return exitcode.Success
	}
	for i, a := range hits {
		output.FormatArticle(out, i+1, a)
	}
	return exitcode.Success
}

package commands

import (
	"context"
	"fmt"
	"io"

	"healthyou/internal/config"
	"healthyou/internal/exitcode"
	"healthyou/internal/records"
	"healthyou/internal/remotelist"
	"healthyou/internal/session"
)

// runRemove is the shared implementation for the rm* commands. An id that
// is not in the loaded list is reported without a delete call.
func runRemove[T records.Record](ctx context.Context, cfg *config.Config, gate *session.Gate, ep remotelist.Endpoint[T], noun string, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(errOut, "error: %s id required\n", noun)
		return exitcode.UserError
	}
	id := args[0]

	p, err := openPage(ctx, cfg, gate, ep)
	if err != nil {
		return report(errOut, err)
	}
	defer p.Close()

	removed, err := p.Store().Remove(ctx, id)
	if err != nil {
		return report(errOut, err)
	}
	if !removed {
		fmt.Fprintf(errOut, "error: %s not found: %s\n", noun, id)
		return exitcode.UserError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

package commands

import (
	"context"

	"healthyou/internal/config"
	"healthyou/internal/page"
	"healthyou/internal/records"
	"healthyou/internal/remotelist"
	"healthyou/internal/session"
)

// openPage activates a page over ep. The caller closes it.
func openPage[T records.Record](ctx context.Context, cfg *config.Config, gate *session.Gate, ep remotelist.Endpoint[T]) (*page.Page[T], error) {
	p := page.New(gate, remotelist.NewStore(ep, cfg.Logger))
	if err := p.Activate(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// requireSession resolves the gate for commands that are not list-backed.
func requireSession(ctx context.Context, gate *session.Gate) error {
	state := gate.State()
	if state == session.Unknown {
		var err error
		if state, err = gate.Check(ctx); err != nil {
			return err
		}
	}
	if state != session.Authenticated {
		return page.ErrLoginRequired
	}
	return nil
}

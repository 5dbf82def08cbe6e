// Package page ties a session gate to a remote list: nothing is fetched
// until the gate has resolved to Authenticated, and then the list is loaded
// exactly once per activation.
package page

import (
	"context"
	"fmt"
	"sync"

	"healthyou/internal/failure"
	"healthyou/internal/records"
	"healthyou/internal/remotelist"
	"healthyou/internal/session"
)

// ErrLoginRequired is returned by Activate when the session is not
// authenticated. Callers redirect to login.
var ErrLoginRequired error = &failure.AuthError{Msg: "not logged in"}

// Page is one activation of a list-backed view.
type Page[T records.Record] struct {
	gate  *session.Gate
	store *remotelist.Store[T]

	mu     sync.Mutex
	loaded bool
}

// New creates a page over gate and store.
func New[T records.Record](gate *session.Gate, store *remotelist.Store[T]) *Page[T] {
	return &Page[T]{gate: gate, store: store}
}

// Store returns the page's mirror.
func (p *Page[T]) Store() *remotelist.Store[T] { return p.store }

// Activate resolves the gate if needed, then loads the list once.
// Later calls return nil without another load.
func (p *Page[T]) Activate(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loaded {
		return nil
	}

	state := p.gate.State()
	if state == session.Unknown {
		var err error
		if state, err = p.gate.Check(ctx); err != nil {
			return fmt.Errorf("read session: %w", err)
		}
	}
	if state != session.Authenticated {
		return ErrLoginRequired
	}

	if _, err := p.store.Load(ctx); err != nil {
		return err
	}
	p.loaded = true
	return nil
}

// Close detaches the mirror so late responses are ignored.
func (p *Page[T]) Close() {
	p.store.Detach()
}

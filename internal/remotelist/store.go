package remotelist

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"healthyou/internal/failure"
	"healthyou/internal/logging"
	"healthyou/internal/records"
)

// ErrMissingID is returned when the server confirms a create or update
// without an id in the returned record.
var ErrMissingID = errors.New("server response has no id")

// Store is the client-side mirror of one remote collection.
//
// The mirror only ever reflects the server's last list response plus the
// mutations this Store issued and the server confirmed. Nothing is inserted
// before confirmation and nothing is rolled back on failure.
type Store[T records.Record] struct {
	ep  Endpoint[T]
	log *zap.Logger

	mu       sync.Mutex
	items    []T
	detached bool
}

// NewStore creates an empty mirror over ep.
func NewStore[T records.Record](ep Endpoint[T], log *zap.Logger) *Store[T] {
	return &Store[T]{ep: ep, log: logging.OrNop(log)}
}

// Items returns a copy of the mirror.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of mirrored records.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Find returns the mirrored record with the given id.
func (s *Store[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Detach stops the Store from applying responses that arrive afterwards.
// Calls already in flight still complete; their results are dropped.
func (s *Store[T]) Detach() {
	s.mu.Lock()
	s.detached = true
	s.mu.Unlock()
}

// Load replaces the whole mirror with the server's list.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	list, err := s.ep.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return nil, nil
	}
	s.items = append(s.items[:0:0], list...)
	s.log.Debug("mirror loaded", zap.Int("count", len(s.items)))
	return append([]T(nil), s.items...), nil
}

// Create validates rec, sends it, and prepends the server's copy.
// rec must not carry an id; ids are assigned by the server.
func (s *Store[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if rec.RecordID() != "" {
		return zero, failure.Invalid("id", "assigned by the server")
	}
	if err := rec.Validate(); err != nil {
		return zero, err
	}

	created, err := s.ep.Create(ctx, rec)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", rec.Kind(), err)
	}
	if created.RecordID() == "" {
		return zero, fmt.Errorf("create %s: %w", rec.Kind(), &failure.NetworkError{Op: "POST", Err: ErrMissingID})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.detached {
		s.items = append([]T{created}, s.items...)
		s.log.Debug("mirror prepend", zap.String("id", created.RecordID()))
	}
	return created, nil
}

// Update validates rec, replaces the record with the given id on the server,
// and swaps the server's copy into the mirror at the same position.
func (s *Store[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	if id == "" {
		return zero, failure.Invalid("id", "required")
	}
	if err := rec.Validate(); err != nil {
		return zero, err
	}

	updated, err := s.ep.Update(ctx, id, rec)
	if err != nil {
		return zero, fmt.Errorf("update %s %s: %w", rec.Kind(), id, err)
	}
	if updated.RecordID() == "" {
		return zero, fmt.Errorf("update %s %s: %w", rec.Kind(), id, &failure.NetworkError{Op: "PUT", Err: ErrMissingID})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return updated, nil
	}
	if i := s.indexOf(id); i >= 0 {
		s.items[i] = updated
	} else {
		s.items = append([]T{updated}, s.items...)
	}
	s.log.Debug("mirror replace", zap.String("id", id))
	return updated, nil
}

// Remove deletes the record with the given id. An id that is not in the
// mirror is a no-op and issues no remote call. If the remote delete fails
// the record stays in the mirror.
func (s *Store[T]) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	present := s.indexOf(id) >= 0
	s.mu.Unlock()
	if !present {
		return false, nil
	}

	if err := s.ep.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("remove %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.detached {
		return true, nil
	}
	// Re-resolve: the mirror may have changed while the call was in flight.
	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
	s.log.Debug("mirror remove", zap.String("id", id))
	return true, nil
}

func (s *Store[T]) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range s.items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}

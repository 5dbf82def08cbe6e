package session

import (
	"context"
	"errors"
	"sync"
)

// Session keys.
const (
	KeyLoggedIn  = "isLoggedIn"
	KeyUserEmail = "userEmail"
	KeyUserName  = "userName"
)

// State is the gate's view of the session.
type State int

const (
	// Unknown means the flag has not been read yet.
	Unknown State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// User is the identity recorded alongside the flag.
type User struct {
	Email string
	Name  string
}

// ErrNoEmail is returned by SignIn for a user without an email.
var ErrNoEmail = errors.New("session requires an email")

// Gate reads and writes the login flag. The flag is trusted as-is: there is
// no server-side validation, so a stale "true" counts as a session.
type Gate struct {
	store Store

	mu    sync.Mutex
	state State
	user  User
}

// NewGate creates a Gate in the Unknown state.
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// State returns the last resolved state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// User returns the signed-in user. It is empty unless State is Authenticated.
func (g *Gate) User() User {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.user
}

// Check reads the flag. Anything other than the literal "true" is
// Unauthenticated. A read error leaves the state Unknown.
func (g *Gate) Check(ctx context.Context) (State, error) {
	flag, _, err := g.store.Get(ctx, KeyLoggedIn)
	if err != nil {
		return Unknown, err
	}

	var user User
	state := Unauthenticated
	if flag == "true" {
		state = Authenticated
		if user.Email, _, err = g.store.Get(ctx, KeyUserEmail); err != nil {
			return Unknown, err
		}
		if user.Name, _, err = g.store.Get(ctx, KeyUserName); err != nil {
			return Unknown, err
		}
	}

	g.mu.Lock()
	g.state, g.user = state, user
	g.mu.Unlock()
	return state, nil
}

// SignIn writes the flag with u's email and name.
func (g *Gate) SignIn(ctx context.Context, u User) error {
	if u.Email == "" {
		return ErrNoEmail
	}
	if err := g.store.Set(ctx, KeyUserEmail, u.Email); err != nil {
		return err
	}
	if err := g.store.Set(ctx, KeyUserName, u.Name); err != nil {
		return err
	}
	if err := g.store.Set(ctx, KeyLoggedIn, "true"); err != nil {
		return err
	}

	g.mu.Lock()
	g.state, g.user = Authenticated, u
	g.mu.Unlock()
	return nil
}

// SignOut clears the whole store.
func (g *Gate) SignOut(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return err
	}
	g.mu.Lock()
	g.state, g.user = Unauthenticated, User{}
	g.mu.Unlock()
	return nil
}

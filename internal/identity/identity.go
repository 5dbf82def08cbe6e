// Package identity resolves who is signing in: either by matching
// credentials against the account collection or through Google sign-in.
package identity

import (
	"context"
	"strings"

	"healthyou/internal/failure"
	"healthyou/internal/records"
	"healthyou/internal/remotelist"
	"healthyou/internal/session"
)

// Messages shown for failed logins.
const (
	MsgWrongCredentials = "Email atau password salah"
	MsgLoginFailed      = "Gagal login. Coba lagi."
)

// Identity is a signed-in user as reported by a provider.
type Identity struct {
	Email       string
	DisplayName string
}

// User converts the identity into the session's user record.
func (id Identity) User() session.User {
	return session.User{Email: id.Email, Name: id.DisplayName}
}

// Provider signs a user in.
type Provider interface {
	SignIn(ctx context.Context) (Identity, error)
}

// Credentials signs in by email and password against the account
// collection. The whole collection is fetched and matched locally.
type Credentials struct {
	Accounts remotelist.Endpoint[records.Account]
	Email    string
	Password string
}

// SignIn returns the matching account's identity. No match is an
// *failure.AuthError; a failed fetch is returned as-is.
func (c Credentials) SignIn(ctx context.Context) (Identity, error) {
	email := strings.TrimSpace(c.Email)
	if email == "" {
		return Identity{}, failure.Invalid("email", "required")
	}
	if c.Password == "" {
		return Identity{}, failure.Invalid("password", "required")
	}

	accounts, err := c.Accounts.List(ctx)
	if err != nil {
		return Identity{}, err
	}
	for _, a := range accounts {
		if a.Matches(email, c.Password) {
			return Identity{Email: a.Email, DisplayName: a.Name}, nil
		}
	}
	return Identity{}, &failure.AuthError{Msg: MsgWrongCredentials}
}

// Register creates an account. It does not sign the user in.
func Register(ctx context.Context, accounts remotelist.Endpoint[records.Account], a records.Account) (records.Account, error) {
	a.ID = ""
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	if err := a.Validate(); err != nil {
		return records.Account{}, err
	}
	return accounts.Create(ctx, a)
}

package records

import (
	"net/mail"
	"strings"

	"healthyou/internal/failure"
)

// Account is a registered user in the Auth collection. The backend is a
// public mock, so the password is stored as sent.
type Account struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a Account) RecordID() string { return a.ID }
func (a Account) Kind() Kind       { return KindAccount }

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return failure.Invalid("name", "required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return failure.Invalid("email", "required")
	}
	if _, err := mail.ParseAddress(a.Email); err != nil {
		return failure.Invalid("email", "not a valid email address")
	}
	if a.Password == "" {
		return failure.Invalid("password", "required")
	}
	return nil
}

// Matches reports whether the account's credentials equal email and password.
func (a Account) Matches(email, password string) bool {
	return a.Email == email && a.Password == password
}

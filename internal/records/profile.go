package records

import (
	"strconv"
	"strings"

	"healthyou/internal/failure"
)

// Profile is a personal data card. Numeric fields travel as strings because
// that is how the backend stores them.
type Profile struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Age    string `json:"age"`    // years
	Height string `json:"height"` // cm
	Weight string `json:"weight"` // kg
	Avatar string `json:"avatar,omitempty"`
}

func (p Profile) RecordID() string { return p.ID }
func (p Profile) Kind() Kind       { return KindProfile }

// Validate requires a name; age, height and weight are optional but must be
// positive numbers when present.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return failure.Invalid("name", "required")
	}
	for _, f := range []struct{ name, value string }{
		{"age", p.Age},
		{"height", p.Height},
		{"weight", p.Weight},
	} {
		v := strings.TrimSpace(f.value)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n <= 0 {
			return failure.Invalid(f.name, "must be a positive number")
		}
	}
	return nil
}

package records

import (
	"net/url"
	"strings"

	"healthyou/internal/failure"
)

// Post is a social-sharing message.
type Post struct {
	ID    string `json:"id,omitempty"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"` // URL or data URL
}

func (p Post) RecordID() string { return p.ID }
func (p Post) Kind() Kind       { return KindPost }

func (p Post) Validate() error {
	if strings.TrimSpace(p.Text) == "" {
		return failure.Invalid("text", "required")
	}
	if p.Image != "" && !strings.HasPrefix(p.Image, "data:") {
		u, err := url.Parse(p.Image)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return failure.Invalid("image", "must be a URL")
		}
	}
	return nil
}

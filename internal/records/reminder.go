package records

import (
	"net/mail"
	"strings"
	"time"

	"healthyou/internal/failure"
)

// Reminder categories.
const (
	CategoryMakan = "makan" // meal
	CategoryMinum = "minum" // drink
	CategoryTidur = "tidur" // sleep
)

// Contact methods.
const (
	ContactEmail    = "email"
	ContactWhatsApp = "whatsapp"
)

// MinReminderText is the minimum trimmed length of a reminder description.
const MinReminderText = 3

// Reminder is a scheduled healthy-habit reminder.
type Reminder struct {
	ID          string `json:"id,omitempty"`
	Text        string `json:"text"`
	Time        string `json:"time"` // HH:MM, local
	Category    string `json:"category"`
	ContactType string `json:"contactType"`
	Contact     string `json:"contact"`
}

func (r Reminder) RecordID() string { return r.ID }
func (r Reminder) Kind() Kind       { return KindReminder }

// Validate checks the reminder form: description of at least three
// characters, a time, a known category and a contact for the chosen method.
func (r Reminder) Validate() error {
	if len([]rune(strings.TrimSpace(r.Text))) < MinReminderText {
		return failure.Invalid("text", "must be at least 3 characters")
	}
	if strings.TrimSpace(r.Time) == "" {
		return failure.Invalid("time", "required")
	}
	if _, err := time.Parse("15:04", r.Time); err != nil {
		return failure.Invalid("time", "must be HH:MM")
	}
	switch r.Category {
	case CategoryMakan, CategoryMinum, CategoryTidur:
	case "":
		return failure.Invalid("category", "required")
	default:
		return failure.Invalid("category", "must be one of makan, minum, tidur")
	}
	contact := strings.TrimSpace(r.Contact)
	if contact == "" {
		return failure.Invalid("contact", "required")
	}
	switch r.ContactType {
	case ContactEmail:
		if _, err := mail.ParseAddress(contact); err != nil {
			return failure.Invalid("contact", "not a valid email address")
		}
	case ContactWhatsApp:
		if !isPhoneNumber(contact) {
			return failure.Invalid("contact", "not a valid WhatsApp number")
		}
	default:
		return failure.Invalid("contactType", "must be email or whatsapp")
	}
	return nil
}

func isPhoneNumber(s string) bool {
	s = strings.TrimPrefix(s, "+")
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= 6
}

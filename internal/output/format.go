// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"healthyou/internal/articles"
	"healthyou/internal/menu"
	"healthyou/internal/records"
	"healthyou/internal/share"
)

const (
	// SectionSeparator is the separator line around section headers.
	SectionSeparator = "------------"
)

// FormatHeader formats a section header.
func FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, normalizeText(title))
	fmt.Fprintln(w, SectionSeparator)
}

// FormatReminder formats a reminder line.
// Format: "{ID}  {HH:MM}  {CATEGORY}  {TEXT}  ({VIA}: {CONTACT})\n"
func FormatReminder(w io.Writer, r records.Reminder) {
	fmt.Fprintf(w, "%s  %s  %s  %s  (%s: %s)\n",
		r.ID, r.Time, r.Category, normalizeText(r.Text), r.ContactType, r.Contact)
}

// FormatProfile formats a profile line. Missing measurements print "-".
// Format: "{ID}  {NAME}  {AGE} th  {HEIGHT} cm  {WEIGHT} kg\n"
func FormatProfile(w io.Writer, p records.Profile) {
	fmt.Fprintf(w, "%s  %s  %s th  %s cm  %s kg\n",
		p.ID, normalizeText(p.Name), orDash(p.Age), orDash(p.Height), orDash(p.Weight))
}

// FormatPost formats a post line, with its image on a second line when set.
// Data URLs are abbreviated.
func FormatPost(w io.Writer, p records.Post) {
	fmt.Fprintf(w, "%s  %s\n", p.ID, normalizeText(p.Text))
	switch {
	case p.Image == "":
	case strings.HasPrefix(p.Image, "data:"):
		fmt.Fprintln(w, "    image: (embedded)")
	default:
		fmt.Fprintf(w, "    image: %s\n", p.Image)
	}
}

// FormatArticle formats a numbered search hit: title, plain snippet and URL.
func FormatArticle(w io.Writer, num int, a articles.Article) {
	fmt.Fprintf(w, "%2d. %s\n", num, normalizeText(a.Title))
	if s := a.PlainSnippet(); s != "" {
		fmt.Fprintf(w, "    %s\n", s)
	}
	fmt.Fprintf(w, "    %s\n", a.URL())
}

// FormatMenu formats one day of the weekly menu.
func FormatMenu(w io.Writer, e menu.Entry) {
	fmt.Fprintln(w, e.Weekday)
	fmt.Fprintf(w, "  Pagi:  %s\n", e.Morning)
	fmt.Fprintf(w, "  Siang: %s\n", e.Midday)
	fmt.Fprintf(w, "  Malam: %s\n", e.Evening)
}

// FormatTemplate formats a numbered message template.
func FormatTemplate(w io.Writer, num int, text string) {
	fmt.Fprintf(w, "%d. %s\n", num, text)
}

// FormatShare formats the share targets of a post.
func FormatShare(w io.Writer, l share.Links) {
	fmt.Fprintf(w, "Text:     %s\n", l.Text)
	fmt.Fprintf(w, "WhatsApp: %s\n", l.WhatsApp)
	fmt.Fprintf(w, "Facebook: %s\n", l.Facebook)
}

// normalizeText normalizes free text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

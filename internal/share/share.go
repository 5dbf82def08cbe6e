// Package share builds the social-sharing texts and links for posts.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// AppURL is the public address appended to every shared message.
const AppURL = "https://healthyou.vercel.app"

// Templates are the ready-made motivational messages offered when writing a
// post.
var Templates = []string{
	"Aku baru saja mulai hidup sehat bareng HealthYou 🌿💧 #HidupSehat",
	"Hari ini aku minum 8 gelas air! Thanks to HealthYou 💪 #HidrasiItuPenting",
	"Tips tidur sehatku dari HealthYou benar-benar membantu! 📌✨",
	"Ayo hidup lebih sehat mulai hari ini! Coba HealthYou juga! 🚀 #HealthYouChallenge",
	"Kamu harus coba HealthYou! Aplikasi pelacak hidup sehat terbaik! 📱💚",
}

// Template returns the n-th template, counting from 1.
func Template(n int) (string, error) {
	if n < 1 || n > len(Templates) {
		return "", fmt.Errorf("template must be between 1 and %d", len(Templates))
	}
	return Templates[n-1], nil
}

// Text is the plain share text used for clipboard and native share targets.
func Text(message string) string {
	return fmt.Sprintf("%s — Dibagikan dari HealthYou %s", strings.TrimSpace(message), AppURL)
}

// WhatsAppURL returns a wa.me link prefilled with message and AppURL.
func WhatsAppURL(message string) string {
	return "https://wa.me/?text=" + escape(strings.TrimSpace(message)) + "%20" + AppURL
}

// FacebookURL returns a sharer link for AppURL quoting message.
func FacebookURL(message string) string {
	return "https://www.facebook.com/sharer/sharer.php?u=" + AppURL + "&quote=" + escape(strings.TrimSpace(message))
}

// Links bundles every share target for one message.
type Links struct {
	Text     string
	WhatsApp string
	Facebook string
}

// For returns all share targets for message.
func For(message string) Links {
	return Links{
		Text:     Text(message),
		WhatsApp: WhatsAppURL(message),
		Facebook: FacebookURL(message),
	}
}

// escape encodes like encodeURIComponent: spaces become %20, not "+".
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

package share

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	got, err := Template(1)
	require.NoError(t, err)
	assert.Equal(t, Templates[0], got)

	got, err = Template(len(Templates))
	require.NoError(t, err)
	assert.Equal(t, Templates[len(Templates)-1], got)

	_, err = Template(0)
	assert.EqualError(t, err, "template must be between 1 and 5")
	_, err = Template(6)
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	assert.Equal(t,
		"Jalan pagi 30 menit — Dibagikan dari HealthYou https://healthyou.vercel.app",
		Text("  Jalan pagi 30 menit "))
}

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("Minum air & tidur cukup")
	assert.Equal(t, "https://wa.me/?text=Minum%20air%20%26%20tidur%20cukup%20https://healthyou.vercel.app", got)

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Minum air & tidur cukup https://healthyou.vercel.app", u.Query().Get("text"))
}

func TestFacebookURL(t *testing.T) {
	got := FacebookURL("Sehat #1")
	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "www.facebook.com", u.Host)
	assert.Equal(t, AppURL, u.Query().Get("u"))
	assert.Equal(t, "Sehat #1", u.Query().Get("quote"))
}

func TestFor(t *testing.T) {
	l := For("Halo")
	assert.Equal(t, Text("Halo"), l.Text)
	assert.Equal(t, WhatsAppURL("Halo"), l.WhatsApp)
	assert.Equal(t, FacebookURL("Halo"), l.Facebook)
}

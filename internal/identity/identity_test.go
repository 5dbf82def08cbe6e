package identity

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"healthyou/internal/failure"
	"healthyou/internal/records"
	"healthyou/internal/remotelist"
	"healthyou/internal/testutil"
)

func accountsEndpoint(t *testing.T) (*remotelist.HTTPEndpoint[records.Account], *testutil.MockAPI) {
	t.Helper()
	api := testutil.NewMockAPI(t)
	ep, err := remotelist.NewHTTPEndpoint[records.Account](api.URL("Auth"), api.Server.Client(), nil)
	require.NoError(t, err)
	return ep, api
}

func TestCredentials_Match(t *testing.T) {
	ep, api := accountsEndpoint(t)
	api.Seed("Auth", records.Account{Name: "Budi", Email: "budi@example.com", Password: "rahasia"})
	api.Seed("Auth", records.Account{Name: "Sari", Email: "sari@example.com", Password: "kuat123"})

	id, err := Credentials{Accounts: ep, Email: " sari@example.com ", Password: "kuat123"}.SignIn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Identity{Email: "sari@example.com", DisplayName: "Sari"}, id)
	assert.Equal(t, "Sari", id.User().Name)
	assert.Equal(t, 1, api.Calls(http.MethodGet, "Auth"))
}

func TestCredentials_WrongPassword(t *testing.T) {
	ep, api := accountsEndpoint(t)
	api.Seed("Auth", records.Account{Name: "Budi", Email: "budi@example.com", Password: "rahasia"})

	_, err := Credentials{Accounts: ep, Email: "budi@example.com", Password: "salah"}.SignIn(context.Background())
	require.ErrorIs(t, err, failure.ErrAuth)
	assert.EqualError(t, err, MsgWrongCredentials)
}

func TestCredentials_MissingFieldsMakeNoCalls(t *testing.T) {
	ep, api := accountsEndpoint(t)

	_, err := Credentials{Accounts: ep, Password: "x"}.SignIn(context.Background())
	assert.ErrorIs(t, err, failure.ErrValidation)
	_, err = Credentials{Accounts: ep, Email: "a@b.com"}.SignIn(context.Background())
	assert.ErrorIs(t, err, failure.ErrValidation)
	assert.Equal(t, 0, api.TotalCalls())
}

func TestCredentials_NetworkFailure(t *testing.T) {
	ep, api := accountsEndpoint(t)
	api.Fail(http.MethodGet, "Auth", http.StatusServiceUnavailable)

	_, err := Credentials{Accounts: ep, Email: "a@b.com", Password: "x"}.SignIn(context.Background())
	assert.ErrorIs(t, err, failure.ErrNetwork)
}

func TestRegister(t *testing.T) {
	ep, api := accountsEndpoint(t)

	got, err := Register(context.Background(), ep, records.Account{Name: " Budi ", Email: "budi@example.com", Password: "rahasia"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Budi", got.Name)

	stored := api.Records("Auth")
	require.Len(t, stored, 1)
	assert.Equal(t, "budi@example.com", stored[0]["email"])
	assert.Equal(t, "rahasia", stored[0]["password"])
}

func TestRegister_Invalid(t *testing.T) {
	ep, api := accountsEndpoint(t)

	_, err := Register(context.Background(), ep, records.Account{Name: "Budi", Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, failure.ErrValidation)
	assert.Equal(t, 0, api.TotalCalls())
}

func TestLoadGoogleConfig(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadGoogleConfig(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrNoOAuthClient)

	path := filepath.Join(dir, "oauth_client.json")
	client := `{"installed":{"client_id":"id","client_secret":"secret","auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token","redirect_uris":["http://localhost"]}}`
	require.NoError(t, os.WriteFile(path, []byte(client), 0600))

	cfg, err := LoadGoogleConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "id", cfg.ClientID)
	assert.Len(t, cfg.Scopes, 2)
}

// fakeGoogle serves the token and userinfo endpoints.
type fakeGoogle struct {
	srv *httptest.Server

	mu       sync.Mutex
	verifier string
}

func newFakeGoogle(t *testing.T) *fakeGoogle {
	f := &fakeGoogle{}
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		f.mu.Lock()
		f.verifier = r.Form.Get("code_verifier")
		f.mu.Unlock()
		if r.Form.Get("code") != "good-code" {
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access", "token_type": "Bearer", "expires_in": 3600,
		})
	})
	mux.HandleFunc("/oauth2/v2/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"email": "sari@gmail.com", "name": "Sari W"})
	})
	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeGoogle) provider(browse func(string) error) *Google {
	return &Google{
		Config: &oauth2.Config{
			ClientID: "id",
			Endpoint: oauth2.Endpoint{AuthURL: f.srv.URL + "/auth", TokenURL: f.srv.URL + "/token"},
			Scopes:   []string{"email"},
		},
		Browse:          browse,
		Listen:          func() (net.Listener, error) { return net.Listen("tcp", "127.0.0.1:0") },
		UserinfoOptions: []option.ClientOption{option.WithEndpoint(f.srv.URL + "/")},
	}
}

// redirect simulates the browser following the consent redirect.
func redirect(code string, tamperState bool) func(string) error {
	return func(authURL string) error {
		u, err := url.Parse(authURL)
		if err != nil {
			return err
		}
		q := u.Query()
		state := q.Get("state")
		if tamperState {
			state = "forged"
		}
		cb := q.Get("redirect_uri") + "?" + url.Values{"code": {code}, "state": {state}}.Encode()
		go func() {
			resp, err := http.Get(cb)
			if err == nil {
				resp.Body.Close()
			}
		}()
		return nil
	}
}

func TestGoogle_SignIn(t *testing.T) {
	f := newFakeGoogle(t)

	var authURL string
	p := f.provider(func(u string) error {
		authURL = u
		return redirect("good-code", false)(u)
	})

	id, err := p.SignIn(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Identity{Email: "sari@gmail.com", DisplayName: "Sari W"}, id)

	u, err := url.Parse(authURL)
	require.NoError(t, err)
	assert.Equal(t, "S256", u.Query().Get("code_challenge_method"))
	assert.NotEmpty(t, u.Query().Get("code_challenge"))

	f.mu.Lock()
	defer f.mu.Unlock()
	assert.NotEmpty(t, f.verifier)
}

func TestGoogle_StateMismatch(t *testing.T) {
	f := newFakeGoogle(t)

	_, err := f.provider(redirect("good-code", true)).SignIn(context.Background())
	assert.ErrorIs(t, err, failure.ErrAuth)
}

func TestGoogle_ExchangeFails(t *testing.T) {
	f := newFakeGoogle(t)

	_, err := f.provider(redirect("bad-code", false)).SignIn(context.Background())
	assert.ErrorIs(t, err, failure.ErrAuth)
}

func TestGoogle_Cancelled(t *testing.T) {
	f := newFakeGoogle(t)
	ctx, cancel := context.WithCancel(context.Background())

	_, err := f.provider(func(string) error { cancel(); return nil }).SignIn(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"healthyou/internal/failure"
	"healthyou/internal/logging"
)

const (
	// OAuth callback timeout
	oauthCallbackTimeout = 5 * time.Minute

	// Token exchange timeout
	tokenExchangeTimeout = 30 * time.Second

	// Starting port for OAuth callback server
	oauthStartPort = 8085

	// Max port attempts
	oauthMaxPortAttempts = 5
)

// ErrNoOAuthClient is returned when the OAuth client file is missing.
var ErrNoOAuthClient = errors.New("oauth client credentials not found")

// LoadGoogleConfig reads a desktop-app OAuth client file and returns a
// config requesting the email and profile scopes.
func LoadGoogleConfig(path string) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoOAuthClient
		}
		return nil, fmt.Errorf("read oauth client: %w", err)
	}
	cfg, err := google.ConfigFromJSON(clientJSON, oauth2api.UserinfoEmailScope, oauth2api.UserinfoProfileScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth client: %w", err)
	}
	return cfg, nil
}

// Google signs in through the browser using the loopback redirect flow with
// PKCE, then reads the user's email and name from the userinfo API.
type Google struct {
	Config *oauth2.Config

	// Prompt receives the URL the user must open.
	Prompt io.Writer

	// Browse, when set, is called with the auth URL after it is printed.
	Browse func(authURL string) error

	// Listen opens the callback listener. Defaults to the first free port
	// from 8085.
	Listen func() (net.Listener, error)

	// UserinfoOptions are extra options for the userinfo client.
	UserinfoOptions []option.ClientOption

	Log *zap.Logger
}

// SignIn runs the browser flow and returns the Google account's identity.
func (g *Google) SignIn(ctx context.Context) (Identity, error) {
	log := logging.OrNop(g.Log)
	listen := g.Listen
	if listen == nil {
		listen = findAvailablePort
	}

	listener, err := listen()
	if err != nil {
		return Identity{}, &failure.AuthError{Msg: "could not bind to local port for OAuth callback"}
	}
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	conf := *g.Config
	conf.RedirectURL = fmt.Sprintf("http://localhost:%d/callback", port)

	verifier := oauth2.GenerateVerifier()
	state := uuid.NewString()
	authURL := conf.AuthCodeURL(state,
		oauth2.AccessTypeOnline,
		oauth2.S256ChallengeOption(verifier),
	)

	if g.Prompt != nil {
		fmt.Fprintln(g.Prompt, "Open this URL in your browser:")
		fmt.Fprintln(g.Prompt, authURL)
	}

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "State mismatch", http.StatusBadRequest)
			sendErr(errCh, fmt.Errorf("state mismatch in callback"))
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "No code in callback", http.StatusBadRequest)
			sendErr(errCh, fmt.Errorf("no code in callback"))
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Login berhasil</h1><p>You may close this window.</p></body></html>")
		select {
		case codeCh <- code:
		default:
		}
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			sendErr(errCh, err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	if g.Browse != nil {
		if err := g.Browse(authURL); err != nil {
			log.Debug("browse failed", zap.Error(err))
		}
	}

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return Identity{}, &failure.AuthError{Msg: err.Error()}
	case <-time.After(oauthCallbackTimeout):
		return Identity{}, &failure.AuthError{Msg: "oauth callback timed out"}
	case <-ctx.Done():
		return Identity{}, ctx.Err()
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancel()

	token, err := conf.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return Identity{}, &failure.AuthError{Msg: fmt.Sprintf("failed to exchange code for token: %v", err)}
	}
	log.Debug("token exchanged", zap.Time("expiry", token.Expiry))

	opts := append([]option.ClientOption{option.WithHTTPClient(conf.Client(ctx, token))}, g.UserinfoOptions...)
	svc, err := oauth2api.NewService(ctx, opts...)
	if err != nil {
		return Identity{}, fmt.Errorf("create userinfo service: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(exchangeCtx).Do()
	if err != nil {
		return Identity{}, &failure.NetworkError{Op: http.MethodGet, URL: "userinfo", Err: err}
	}
	if info.Email == "" {
		return Identity{}, &failure.AuthError{Msg: "google account has no email"}
	}

	name := info.Name
	if name == "" {
		name = info.GivenName
	}
	return Identity{Email: info.Email, DisplayName: name}, nil
}

func sendErr(ch chan<- error, err error) {
	select {
	case ch <- err:
	default:
	}
}

// findAvailablePort tries to find an available port starting from oauthStartPort.
func findAvailablePort() (net.Listener, error) {
	for i := 0; i < oauthMaxPortAttempts; i++ {
		addr := fmt.Sprintf("localhost:%d", oauthStartPort+i)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			return listener, nil
		}
	}
	return nil, fmt.Errorf("no available port found")
}

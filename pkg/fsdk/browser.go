package fsdk

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/fintracklabs/fintrack/pkg/fsdk/ferr"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// BrowserAuth orchestrates an interactive browser-based login for CLI
// users. It starts a temporary loopback HTTP server to receive the
// authorization-code redirect and delivers the code over a buffered
// channel. The buffer prevents the HTTP handler from blocking if the
// caller is slow to receive.
type BrowserAuth struct {
	sdk    *Sdk
	oauth  *oauth2.Config
	state  string
	codeCh chan string
	errCh  chan error

	CallbackServer *CallbackServer
}

// CallbackServer hosts a temporary HTTP listener on localhost used
// during the interactive login flow. The chosen listener address is
// exposed in Addr so callers can inspect it.
type CallbackServer struct {
	Addr string
}

// NewBrowserAuth prepares a browser login against this SDK's backend.
func (s *Sdk) NewBrowserAuth() *BrowserAuth {
	return &BrowserAuth{
		sdk: s,
		oauth: &oauth2.Config{
			ClientID: "fintrack-cli",
			Endpoint: oauth2.Endpoint{
				AuthURL:  s.BaseURL + "/api/auth/oauth/authorize",
				TokenURL: s.BaseURL + "/api/auth/oauth/token",
			},
		},
		state:  uuid.NewString(),
		codeCh: make(chan string, 1),
		errCh:  make(chan error, 1),
	}
}

func getFreePort() (port int, err error) {
	var a *net.TCPAddr
	if a, err = net.ResolveTCPAddr("tcp", "localhost:0"); err == nil {
		var l *net.TCPListener
		if l, err = net.ListenTCP("tcp", a); err == nil {
			defer l.Close()
			return l.Addr().(*net.TCPAddr).Port, nil
		}
	}
	return 0, err
}

// Initiate starts the callback server and returns the authorization URL
// to open in a browser. Callers must then call Complete to finish the
// exchange.
func (ba *BrowserAuth) Initiate() (string, error) {
	cs := &CallbackServer{}
	callbackURL, err := cs.start(ba.state, ba.codeCh, ba.errCh)
	if err != nil {
		return "", fmt.Errorf("starting callback server: %w", err)
	}
	ba.CallbackServer = cs
	ba.oauth.RedirectURL = callbackURL
	return ba.oauth.AuthCodeURL(ba.state), nil
}

// Complete waits for the browser redirect, exchanges the authorization
// code for a token pair, and stores it. Times out after 2 minutes so
// the CLI never hangs on an abandoned login.
func (ba *BrowserAuth) Complete(ctx context.Context) (*TokenPair, error) {
	var code string
	select {
	case code = <-ba.codeCh:
	case err := <-ba.errCh:
		return nil, fmt.Errorf("login failed: %w", err)
	case <-time.After(2 * time.Minute):
		return nil, fmt.Errorf("login timed out")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	token, err := ba.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, ferr.New(ferr.CodeUnauthorized, fmt.Errorf("exchanging authorization code: %w", err))
	}
	pair := &TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}
	if err := ba.sdk.setSession(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return nil, ferr.New(ferr.CodeUnknown, err)
	}
	return pair, nil
}

// start launches the loopback server with a single /callback handler.
// The server shuts itself down after the redirect arrives. Returns the
// callback URL to register as the redirect_uri.
func (cs *CallbackServer) start(state string, ch chan<- string, ech chan<- error) (string, error) {
	port, err := getFreePort()
	if err != nil {
		return "", fmt.Errorf("failed to get free port: %w", err)
	}

	addr := fmt.Sprintf(":%d", port)
	cs.Addr = addr

	mux := http.NewServeMux()
	var srv *http.Server
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Authentication successful. You can close this window.\n"))

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		shutdown := func() {
			if srv != nil {
				go func() { _ = srv.Shutdown(context.Background()) }()
			}
		}

		if got := r.URL.Query().Get("state"); got != state {
			ech <- fmt.Errorf("state mismatch in callback")
			shutdown()
			return
		}
		code := r.URL.Query().Get("code")
		if code == "" {
			ech <- fmt.Errorf("no authorization code in callback")
			shutdown()
			return
		}

		ch <- code
		shutdown()
	})

	srv = &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			ech <- err
		}
	}()

	return fmt.Sprintf("http://localhost:%d/callback", port), nil
}

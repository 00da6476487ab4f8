// Package auth obtains the user-authorized HTTP client the Data API
// requires. Comment reads need real user credentials: the installed-app
// consent flow runs once and the resulting token is cached for later runs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"
)

// scopes grant read access to the account's YouTube data.
var scopes = []string{youtube.YoutubeForceSslScope, youtube.YoutubeReadonlyScope}

// NewClient returns an HTTP client carrying valid credentials for the Data
// API. A usable cached token is reused; otherwise the consent flow runs and
// the fresh token is written back to cacheFile.
func NewClient(ctx context.Context, clientSecretFile, cacheFile string) (*http.Client, error) {
	data, err := readSecret(clientSecretFile)
	if err != nil {
		return nil, err
	}
	cfg, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("auth: parse client secret: %w", err)
	}

	tok, err := loadToken(cacheFile)
	if err != nil {
		tok, err = authorize(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := saveToken(cacheFile, tok); err != nil {
			// A lost cache only costs a re-consent on the next run.
			log.Printf("ytcomb: cache token: %v", err)
		}
	}

	return cfg.Client(ctx, tok), nil
}

// authorize runs the installed-application flow: the user visits the consent
// URL in a browser and the provider redirects back to an ephemeral localhost
// listener carrying the authorization code.
func authorize(ctx context.Context, cfg *oauth2.Config) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("auth: start redirect listener: %w", err)
	}
	defer ln.Close()

	cfg.RedirectURL = fmt.Sprintf("http://%s/", ln.Addr())
	state := uuid.NewString()
	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	server := &http.Server{Handler: redirectHandler(state, codeCh, errCh)}
	go server.Serve(ln)
	defer server.Close()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	log.Printf("ytcomb: visit this URL to authorize access:\n%s", authURL)

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, fmt.Errorf("auth: consent redirect: %w", err)
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("auth: exchange authorization code: %w", err)
	}
	return tok, nil
}

// redirectHandler accepts the single consent redirect. Outcomes are sent
// non-blocking so stray repeat requests cannot wedge the handler.
func redirectHandler(state string, codeCh chan<- string, errCh chan<- error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		q := r.URL.Query()
		if msg := q.Get("error"); msg != "" {
			http.Error(w, "Authorization failed.", http.StatusBadRequest)
			sendErr(errCh, fmt.Errorf("consent denied: %s", msg))
			return
		}
		if q.Get("state") != state {
			http.Error(w, "State mismatch.", http.StatusBadRequest)
			sendErr(errCh, errors.New("state mismatch"))
			return
		}
		code := q.Get("code")
		if code == "" {
			http.Error(w, "Missing authorization code.", http.StatusBadRequest)
			sendErr(errCh, errors.New("redirect carried no authorization code"))
			return
		}

		fmt.Fprintln(w, "Authorized. You can close this tab.")
		select {
		case codeCh <- code:
		default:
		}
	})
}

func sendErr(errCh chan<- error, err error) {
	select {
	case errCh <- err:
	default:
	}
}

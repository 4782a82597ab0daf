package sheets

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"gestiondeo/internal/config"
)

// ErrNoToken means no spreadsheet-scoped token has been installed yet: the
// operator has to complete the Google consent flow (or configure a refresh
// token) before any sheet call can go out.
var ErrNoToken = errors.New("no google access token available")

// OAuthConfig builds the consent-flow config for the spreadsheet scope.
func OAuthConfig(cfg *config.RuntimeConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{cfg.SheetsScope},
		Endpoint:     google.Endpoint,
	}
}

// TokenStore is the single mutable token the Sheets client reads through.
// A configured refresh token seeds it at startup; the OAuth callback replaces
// it when an operator signs in interactively.
type TokenStore struct {
	mu   sync.RWMutex
	conf *oauth2.Config
	tok  *oauth2.Token
}

func NewTokenStore(conf *oauth2.Config, refreshToken string) *TokenStore {
	s := &TokenStore{conf: conf}
	if refreshToken != "" {
		s.tok = &oauth2.Token{RefreshToken: refreshToken}
	}
	return s
}

// Token implements oauth2.TokenSource. Expired tokens are refreshed in place
// so every repository call sees the latest credentials.
func (s *TokenStore) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	tok := s.tok
	s.mu.RUnlock()

	if tok == nil {
		return nil, ErrNoToken
	}
	if tok.Valid() {
		return tok, nil
	}

	refreshed, err := s.conf.TokenSource(context.Background(), tok).Token()
	if err != nil {
		return nil, err
	}
	s.Set(refreshed)
	return refreshed, nil
}

func (s *TokenStore) Set(tok *oauth2.Token) {
	s.mu.Lock()
	s.tok = tok
	s.mu.Unlock()
}

func (s *TokenStore) HasToken() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok != nil && (s.tok.RefreshToken != "" || s.tok.Expiry.After(time.Now()))
}

// NewService builds the Sheets v4 client over the shared token store.
func NewService(ctx context.Context, store *TokenStore) (*gsheets.Service, error) {
	return gsheets.NewService(ctx, option.WithTokenSource(store))
}

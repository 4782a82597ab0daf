package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"gestiondeo/internal/sheets"
)

type jwtService interface {
	GenerateToken(username, role string) (string, error)
}

// Service covers both login paths: the fixed-credential check of the early
// revision and the Google consent flow that installs the spreadsheet-scoped
// token the later revision runs on.
type Service struct {
	adminUsername     string
	adminPasswordHash string
	jwt               jwtService

	oauthConf *oauth2.Config
	tokens    *sheets.TokenStore

	mu            sync.Mutex
	pendingStates map[string]struct{}

	onConnected func()
}

// OnConnected registers the hook that runs after a consent flow completes,
// typically a full reload of the spreadsheet snapshot.
func (s *Service) OnConnected(fn func()) {
	s.onConnected = fn
}

func NewService(adminUsername, adminPasswordHash string, jwt jwtService, oauthConf *oauth2.Config, tokens *sheets.TokenStore) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwt:               jwt,
		oauthConf:         oauthConf,
		tokens:            tokens,
		pendingStates:     make(map[string]struct{}),
	}
}

// Login checks the fixed operator credentials and issues a session token.
// Only the bcrypt hash of the password is ever configured.
func (s *Service) Login(req LoginRequest) (*LoginResponse, error) {
	if req.Username != s.adminUsername || s.adminPasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(req.Username, "admin")
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Username: req.Username, Role: "admin", Token: token}, nil
}

// GoogleAuthURL starts the consent flow. The state value is held until the
// callback returns it.
func (s *Service) GoogleAuthURL() (string, error) {
	if s.oauthConf == nil || s.oauthConf.ClientID == "" {
		return "", ErrOAuthNotConfigured
	}

	state := uuid.NewString()
	s.mu.Lock()
	s.pendingStates[state] = struct{}{}
	s.mu.Unlock()

	return s.oauthConf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// HandleCallback exchanges the authorization code and installs the resulting
// token as the Sheets client's credentials.
func (s *Service) HandleCallback(ctx context.Context, state, code string) error {
	if s.oauthConf == nil || s.oauthConf.ClientID == "" {
		return ErrOAuthNotConfigured
	}

	s.mu.Lock()
	_, ok := s.pendingStates[state]
	delete(s.pendingStates, state)
	s.mu.Unlock()
	if !ok {
		return ErrInvalidState
	}

	tok, err := s.oauthConf.Exchange(ctx, code)
	if err != nil {
		return err
	}
	s.tokens.Set(tok)

	if s.onConnected != nil {
		go s.onConnected()
	}
	return nil
}

// HasSheetToken reports whether the Sheets client is usable yet; the SPA
// shows the consent prompt while it is not.
func (s *Service) HasSheetToken() bool {
	return s.tokens.HasToken()
}

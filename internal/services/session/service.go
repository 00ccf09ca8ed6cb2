package session

import (
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"kiib/internal/domain"
)

// Service is the single source of truth for authentication state.
//
// It owns the in-memory projection of the persisted credential:
//
//	Restoring → Anonymous        (no credential on disk)
//	Restoring → Authenticated    (credential restored)
//	Anonymous → Authenticated    (login)
//	Authenticated → Anonymous    (logout, or invalidation after a 401)
//
// No transition leads back to Restoring. The service performs no network
// calls; its only side effects are credential store reads and writes.
type Service struct {
	store domain.CredentialStore

	mu    sync.Mutex
	state domain.SessionState
	cred  domain.Credential
}

// New returns a session service backed by the given credential store,
// in the restoring state until Restore is called.
func New(store domain.CredentialStore) *Service {
	return &Service{store: store, state: domain.StateRestoring}
}

// Restore initialises the session from persisted storage. It is called once
// at process start and never fails: a credential that cannot be read or
// decrypted restores to anonymous, leaving the file untouched.
func (s *Service) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateRestoring {
		return
	}
	cred, ok, err := s.store.LoadCredential()
	if err != nil || !ok {
		s.state = domain.StateAnonymous
		return
	}
	s.cred = cred
	s.state = domain.StateAuthenticated
}

// Login persists the credential and transitions to authenticated. The token
// is trusted as handed in; the backend is the authority on its validity.
func (s *Service) Login(token string, role domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred := domain.Credential{AccessToken: token, Role: role}
	if err := s.store.SaveCredential(cred); err != nil {
		return err
	}
	s.cred = cred
	s.state = domain.StateAuthenticated
	return nil
}

// Logout clears the persisted credential and transitions to anonymous.
// Logging out while anonymous is a no-op.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.StateAnonymous {
		return nil
	}
	if err := s.store.ClearCredential(); err != nil {
		return err
	}
	s.cred = domain.Credential{}
	s.state = domain.StateAnonymous
	return nil
}

// Invalidate flips the in-memory state to anonymous. The API client calls
// this (via wiring) after evicting the persisted credential on a 401, so
// memory and disk never diverge.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cred = domain.Credential{}
	if s.state == domain.StateAuthenticated {
		s.state = domain.StateAnonymous
	}
}

// IsAuthenticated reports whether a credential is present.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.StateAuthenticated
}

// Role returns the authenticated role, if any.
func (s *Service) Role() (domain.Role, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.StateAuthenticated {
		return "", false
	}
	return s.cred.Role, true
}

// Loading reports whether the startup restoration has not completed yet.
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == domain.StateRestoring
}

// State returns the current session state.
func (s *Service) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Claims decodes the stored access token without verifying its signature.
// The client holds no verification key, so the result is display-only and
// never drives authorisation.
func (s *Service) Claims() (domain.TokenClaims, error) {
	s.mu.Lock()
	token := s.cred.AccessToken
	s.mu.Unlock()

	if token == "" {
		return domain.TokenClaims{}, fmt.Errorf("not logged in")
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return domain.TokenClaims{}, fmt.Errorf("decode access token: %w", err)
	}

	out := domain.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// Service is the session lifecycle component: it is the single place that
// verifies credentials, creates sessions, and answers "who is signed in".
type Service struct {
	sessions *scs.SessionManager
	users    *store.UserStore
}

// NewService creates an auth Service.
func NewService(sm *scs.SessionManager, us *store.UserStore) *Service {
	return &Service{sessions: sm, users: us}
}

// SignIn verifies email+password and establishes a session. Inputs are
// trimmed; both are required. Returns store.ErrInvalidCredentials on an
// unknown email or a password mismatch, without distinguishing the two.
func (s *Service) SignIn(ctx context.Context, email, password string) (*store.User, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, store.ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, store.ErrInvalidCredentials
	}
	if user.PasswordHash == "" || !CheckPassword(user.PasswordHash, password) {
		return nil, store.ErrInvalidCredentials
	}

	// Rotate the session token on privilege change.
	if err := s.sessions.RenewToken(ctx); err != nil {
		return nil, fmt.Errorf("renew session: %w", err)
	}
	s.sessions.Put(ctx, SessionUserIDKey, user.ID)
	return user, nil
}

// SignInSSO establishes a session for an already-verified OIDC identity.
func (s *Service) SignInSSO(ctx context.Context, user *store.User) error {
	if err := s.sessions.RenewToken(ctx); err != nil {
		return fmt.Errorf("renew session: %w", err)
	}
	s.sessions.Put(ctx, SessionUserIDKey, user.ID)
	return nil
}

// SignOut destroys the current session.
func (s *Service) SignOut(ctx context.Context) error {
	return s.sessions.Destroy(ctx)
}

// SessionUser returns the signed-in user, or nil when there is no valid
// session or the lookup fails. Read-only; never returns an error.
func (s *Service) SessionUser(ctx context.Context) *store.User {
	userID := s.sessions.GetString(ctx, SessionUserIDKey)
	if userID == "" {
		return nil
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return user
}

// IsAuthenticated reports whether the request context carries a valid session.
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	return s.SessionUser(ctx) != nil
}

package auth

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

type contextKey string

const UserContextKey contextKey = "user"

// Gate decision reasons, reported in AuthResult and used as metric labels.
const (
	ReasonLocalBypass   = "local_bypass"
	ReasonSession       = "session"
	ReasonBearer        = "bearer"
	ReasonNoCredentials = "no_credentials"
	ReasonInvalidToken  = "invalid_token"
	ReasonUnknownUser   = "unknown_user"
)

// AuthResult is the outcome of a gate check.
type AuthResult struct {
	Allowed bool
	User    *store.User // nil for a local-dev bypass
	Reason  string
}

// Gate is the single authentication check shared by the API middleware and
// the page middleware. Both surfaces see identical policy: an explicit
// local-development bypass, then the session cookie, then a Bearer JWT.
type Gate struct {
	sessions  *scs.SessionManager
	users     *store.UserStore
	jwtSecret string
	skipLocal bool
}

// NewGate creates a Gate. jwtSecret may be empty, which disables Bearer
// authentication; skipLocal allows unauthenticated loopback requests.
func NewGate(sm *scs.SessionManager, us *store.UserStore, jwtSecret string, skipLocal bool) *Gate {
	return &Gate{sessions: sm, users: us, jwtSecret: jwtSecret, skipLocal: skipLocal}
}

// bearerClaims is the expected JWT payload for API callers.
type bearerClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Authenticate decides allow or deny for the request. It must run below the
// session manager's LoadAndSave middleware. It never panics upward; a store
// or token error is a denial, not a failure.
func (g *Gate) Authenticate(r *http.Request) AuthResult {
	if g.skipLocal && IsLoopback(r.Host) {
		return AuthResult{Allowed: true, Reason: ReasonLocalBypass}
	}

	staleSession := false
	if userID := g.sessions.GetString(r.Context(), SessionUserIDKey); userID != "" {
		user, err := g.users.GetByID(r.Context(), userID)
		if err == nil {
			return AuthResult{Allowed: true, User: user, Reason: ReasonSession}
		}
		// Session references a deleted user; fall through to the Bearer
		// path rather than trusting a stale cookie.
		staleSession = true
	}

	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && token != "" {
		if g.jwtSecret == "" {
			return AuthResult{Reason: ReasonInvalidToken}
		}
		claims := &bearerClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
			return []byte(g.jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !parsed.Valid {
			return AuthResult{Reason: ReasonInvalidToken}
		}
		// Prefer a matching local user record; a token identity without
		// one is still valid (the token itself is the credential).
		if user, err := g.users.GetByEmail(r.Context(), claims.Email); err == nil {
			return AuthResult{Allowed: true, User: user, Reason: ReasonBearer}
		}
		return AuthResult{
			Allowed: true,
			User:    &store.User{ID: claims.Subject, Email: claims.Email, Role: "admin"},
			Reason:  ReasonBearer,
		}
	}

	if staleSession {
		return AuthResult{Reason: ReasonUnknownUser}
	}
	return AuthResult{Reason: ReasonNoCredentials}
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) *store.User {
	u, _ := ctx.Value(UserContextKey).(*store.User)
	return u
}

// WithUser returns a child context carrying the authenticated user.
func WithUser(ctx context.Context, u *store.User) context.Context {
	return context.WithValue(ctx, UserContextKey, u)
}

// IsLoopback reports whether an HTTP Host header names a loopback address.
func IsLoopback(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

package auth

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

const (
	cookieState        = "__auth_state"
	cookieCodeVerifier = "__auth_pkce"
	cookieRedirect     = "__auth_redirect"
)

// Handlers provides the HTTP handlers for the authentication flows:
// credential login for the admin area, logout, and the optional OIDC SSO
// code flow.
type Handlers struct {
	svc      *Service
	provider *Provider // nil when SSO is not configured
	users    *store.UserStore
}

// NewHandlers creates a new Handlers. provider may be nil.
func NewHandlers(svc *Service, provider *Provider, us *store.UserStore) *Handlers {
	return &Handlers{svc: svc, provider: provider, users: us}
}

// Login handles the admin login form POST. On success it redirects to the
// preserved "from" URL (or the dashboard); on failure back to the login page
// with an error flag so entered context is not lost behind a 500.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/login?error=invalid", http.StatusFound)
		return
	}

	_, err := h.svc.SignIn(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		log.Printf("auth: login failed: %v", err)
		http.Redirect(w, r, "/admin/login?error=invalid", http.StatusFound)
		return
	}

	http.Redirect(w, r, safeRedirectTarget(r.FormValue("from")), http.StatusFound)
}

// Logout destroys the session and redirects to the login page. Failures are
// logged and surfaced, never swallowed.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context()); err != nil {
		log.Printf("auth: logout failed: %v", err)
		http.Error(w, "logout error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

// SSOLogin initiates the OIDC authorization code flow with PKCE.
func (h *Handlers) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		http.NotFound(w, r)
		return
	}

	state, err := GenerateState()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	verifier, challenge, err := GeneratePKCE()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	setPreAuthCookie(w, cookieState, state)
	setPreAuthCookie(w, cookieCodeVerifier, verifier)
	setPreAuthCookie(w, cookieRedirect, safeRedirectTarget(r.URL.Query().Get("from")))

	http.Redirect(w, r, h.provider.AuthCodeURL(state, challenge), http.StatusFound)
}

// SSOCallback handles the OIDC provider redirect after authentication.
func (h *Handlers) SSOCallback(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		http.NotFound(w, r)
		return
	}

	stateCookie, err := r.Cookie(cookieState)
	if err != nil || stateCookie.Value != r.URL.Query().Get("state") {
		http.Error(w, "invalid state", http.StatusBadRequest)
		return
	}

	verifierCookie, err := r.Cookie(cookieCodeVerifier)
	if err != nil {
		http.Error(w, "missing code verifier", http.StatusBadRequest)
		return
	}

	idToken, err := h.provider.Exchange(r.Context(), r.URL.Query().Get("code"), verifierCookie.Value)
	if err != nil {
		http.Error(w, "authentication failed", http.StatusUnauthorized)
		return
	}

	var claims struct {
		Subject string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		http.Error(w, "invalid claims", http.StatusUnauthorized)
		return
	}

	user, err := h.users.UpsertSSO(r.Context(), idToken.Issuer, claims.Subject, claims.Email, claims.Name)
	if err != nil {
		http.Error(w, "user record error", http.StatusInternalServerError)
		return
	}

	if err := h.svc.SignInSSO(r.Context(), user); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}

	clearCookie(w, cookieState)
	clearCookie(w, cookieCodeVerifier)

	redirect := "/admin/dashboard"
	if c, err := r.Cookie(cookieRedirect); err == nil && c.Value != "" {
		redirect = safeRedirectTarget(c.Value)
	}
	clearCookie(w, cookieRedirect)

	http.Redirect(w, r, redirect, http.StatusFound)
}

// safeRedirectTarget keeps post-login redirects on this site.
func safeRedirectTarget(from string) string {
	if decoded, err := url.QueryUnescape(from); err == nil {
		from = decoded
	}
	if from == "" || from[0] != '/' || len(from) > 1 && from[1] == '/' {
		return "/admin/dashboard"
	}
	return from
}

func setPreAuthCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   300, // 5 minutes
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:    name,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}

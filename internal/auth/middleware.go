package auth

import (
	"html/template"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/metrics"
)

// MaxRedirects is the number of consecutive login redirects tolerated for
// one client+path before the page gate serves the diagnostic page instead.
const MaxRedirects = 3

// Path classes for the admin area. Everything outside /admin passes through
// untouched; /admin/login stays public so the gate cannot lock itself out.
var (
	protectedPrefixes = []string{
		"/admin/services",
		"/admin/gallery",
		"/admin/contact",
		"/admin/settings",
	}
	// Semi-protected paths tolerate a missing session when the request
	// arrives from a loopback host, to smooth local development.
	semiProtectedPrefixes = []string{
		"/admin/dashboard",
	}
	publicAdminPaths = []string{
		"/admin/login",
	}
)

// PageGate intercepts admin page navigation: it lets authenticated requests
// through, redirects unauthenticated ones to the login page, and breaks
// redirect loops with a diagnostic page after MaxRedirects attempts.
type PageGate struct {
	gate       *Gate
	loops      *loopTracker
	ssoEnabled bool
}

// NewPageGate creates a PageGate over the shared authentication gate.
func NewPageGate(gate *Gate, ssoEnabled bool) *PageGate {
	return &PageGate{
		gate:       gate,
		loops:      newLoopTracker(30*time.Second, 1024),
		ssoEnabled: ssoEnabled,
	}
}

func hasPrefixIn(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Protect is the route middleware for the admin area.
func (pg *PageGate) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if !strings.HasPrefix(path, "/admin") || hasPrefixIn(path, publicAdminPaths) {
			next.ServeHTTP(w, r)
			return
		}

		protected := hasPrefixIn(path, protectedPrefixes)
		semiProtected := hasPrefixIn(path, semiProtectedPrefixes)
		if !protected && !semiProtected {
			next.ServeHTTP(w, r)
			return
		}

		key := loopKey(r)
		result := pg.gate.Authenticate(r)
		if result.Allowed {
			pg.loops.reset(key)
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), result.User)))
			return
		}

		if semiProtected && IsLoopback(r.Host) {
			next.ServeHTTP(w, r)
			return
		}

		metrics.GateDenialsTotal.WithLabelValues("page").Inc()

		count := pg.loops.bump(key)
		if count > MaxRedirects {
			metrics.RedirectLoopsBrokenTotal.Inc()
			pg.serveDiagnostic(w, r, count-1)
			return
		}

		to := "/admin/login?from=" + url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, to, http.StatusFound)
	})
}

// loopKey identifies one client's attempts on one path. RealIP middleware
// upstream makes RemoteAddr the client address behind proxies.
func loopKey(r *http.Request) string {
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		host = h
	}
	return host + "|" + r.URL.Path
}

type diagnosticData struct {
	Redirects     int
	Path          string
	Host          string
	CookieNames   []string
	HasAuthHeader bool
	HasJWTSecret  bool
	SSOEnabled    bool
}

// serveDiagnostic renders the loop-breaker page: status 200, text/html,
// describing what the gate saw and how to get unstuck.
func (pg *PageGate) serveDiagnostic(w http.ResponseWriter, r *http.Request, redirects int) {
	data := diagnosticData{
		Redirects:     redirects,
		Path:          r.URL.Path,
		Host:          r.Host,
		HasAuthHeader: strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "),
		HasJWTSecret:  pg.gate.jwtSecret != "",
		SSOEnabled:    pg.ssoEnabled,
	}
	for _, c := range r.Cookies() {
		data.CookieNames = append(data.CookieNames, c.Name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = diagnosticTmpl.Execute(w, data)
}

var diagnosticTmpl = template.Must(template.New("diagnostic").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Authentication Debug Page</title>
  <style>
    body { font-family: Arial, sans-serif; padding: 20px; max-width: 800px; margin: 0 auto; line-height: 1.6; }
    h1 { color: #d00; }
    .card { padding: 15px; border: 1px solid #e2e8f0; margin-bottom: 15px; border-radius: 5px; }
    code { background: #f1f1f1; padding: 2px 5px; border-radius: 3px; font-family: monospace; }
  </style>
</head>
<body>
  <h1>Authentication Debug Page</h1>
  <div class="card">
    <p>Stopped a redirect loop after {{.Redirects}} redirects to the login page.</p>
    <p>This page is shown instead of another redirect because the server could not validate your session.</p>
  </div>
  <div class="card">
    <h2>Request Details</h2>
    <p>Path: <code>{{.Path}}</code></p>
    <p>Host: <code>{{.Host}}</code></p>
    <p>Cookies: {{if .CookieNames}}{{range .CookieNames}}<code>{{.}}</code> {{end}}{{else}}none found{{end}}</p>
    <p>Authorization header: {{if .HasAuthHeader}}present{{else}}missing{{end}}</p>
    <h2>Server Configuration</h2>
    <p>Bearer token secret (LAWN_AUTH_JWT_SECRET): {{if .HasJWTSecret}}set{{else}}not set{{end}}</p>
    <p>SSO login (LAWN_OIDC_ISSUER): {{if .SSOEnabled}}configured{{else}}not configured{{end}}</p>
  </div>
  <div class="card">
    <h2>Troubleshooting Steps</h2>
    <ol>
      <li>Sign in again at <a href="/admin/login">/admin/login</a>; a successful login clears the loop counter.</li>
      <li>Try clearing your browser cookies or using a private/incognito window.</li>
      <li>Check that the server's database is reachable; sessions are stored there.</li>
      <li>For local development, set <code>LAWN_AUTH_SKIP_LOCAL=true</code> to bypass the gate on loopback.</li>
      <li>The loop counter expires on its own after about 30 seconds.</li>
    </ol>
  </div>
  <div class="card">
    <p><a href="/admin/login">Go to Login Page</a></p>
    <p><a href="/">Go to Home Page</a></p>
  </div>
</body>
</html>
`))

package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/ElectrumIsPog/Lawn-Care-Template/docs/swagger"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/api"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/auth"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
	"github.com/ElectrumIsPog/Lawn-Care-Template/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	AuthHandlers   *auth.Handlers
	AuthService    *auth.Service
	Gate           *auth.Gate
	PageGate       *auth.PageGate
	ServiceStore   *store.ServiceStore
	GalleryStore   *store.GalleryStore
	SettingsStore  *store.SettingsStore
	ContactStore   *store.ContactStore
	UploadsDir     string
	SSOEnabled     bool
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(deps.SessionManager.LoadAndSave)

	public := NewPublicHandler(deps.SettingsStore, deps.ServiceStore, deps.GalleryStore, deps.AuthService)
	admin := NewAdminHandler(deps.SettingsStore, deps.ServiceStore, deps.GalleryStore, deps.ContactStore, deps.AuthService, deps.SSOEnabled)

	r.Use(public.MaintenanceMode)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/site.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	// Uploaded images live on local disk, outside the binary.
	r.Handle("/uploads/*", http.StripPrefix("/uploads", http.FileServer(http.Dir(deps.UploadsDir))))

	r.Handle("/metrics", promhttp.Handler())

	// Auth routes (no auth required)
	r.Post("/admin/login", deps.AuthHandlers.Login)
	r.Post("/auth/logout", deps.AuthHandlers.Logout)
	r.Get("/auth/sso", deps.AuthHandlers.SSOLogin)
	r.Get("/auth/callback", deps.AuthHandlers.SSOCallback)

	// Public pages
	r.Get("/", public.Home)
	r.Get("/services", public.Services)
	r.Get("/gallery", public.Gallery)
	r.Get("/about", public.About)
	r.Get("/contact", public.Contact)

	// Admin pages, behind the shared page gate.
	r.Group(func(r chi.Router) {
		r.Use(deps.PageGate.Protect)

		r.Get("/admin", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
		})
		r.Get("/admin/login", admin.Login)
		r.Get("/admin/dashboard", admin.Dashboard)
		r.Get("/admin/services", admin.Services)
		r.Get("/admin/gallery", admin.Gallery)
		r.Get("/admin/contact", admin.ContactInbox)
		r.Get("/admin/settings", admin.Settings)
	})

	// Swagger UI — no auth required. Lives outside /api so the API mount
	// keeps that whole subtree.
	r.Get("/docs/*", httpSwagger.WrapHandler)

	// JSON API sub-router.
	apiRouter := api.NewAPIRouter(api.Deps{
		Gate:          deps.Gate,
		ServiceStore:  deps.ServiceStore,
		GalleryStore:  deps.GalleryStore,
		SettingsStore: deps.SettingsStore,
		ContactStore:  deps.ContactStore,
		UploadsDir:    deps.UploadsDir,
	})
	r.Mount("/api", apiRouter)

	return r
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/auth"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/metrics"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Gate          *auth.Gate
	ServiceStore  store.ServiceStoreIface
	GalleryStore  store.GalleryStoreIface
	SettingsStore store.SettingsStoreIface
	ContactStore  store.ContactStoreIface
	UploadsDir    string
}

// NewAPIRouter creates the chi sub-router mounted at /api.
// Reads of services, gallery, and settings are public, as is the contact
// form POST. Every write and the contact inbox go through the shared gate.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	// All API responses are JSON.
	r.Use(jsonContentType)

	services := &servicesHandler{services: deps.ServiceStore}
	gallery := &galleryHandler{gallery: deps.GalleryStore}
	settings := &settingsHandler{settings: deps.SettingsStore}
	contact := &contactHandler{contact: deps.ContactStore}
	uploads := &uploadsHandler{dir: deps.UploadsDir}

	// Public surface.
	r.Get("/services", services.List)
	r.Get("/services/{id}", services.Get)
	r.Get("/gallery", gallery.List)
	r.Get("/gallery/{id}", gallery.Get)
	r.Get("/settings", settings.Get)
	r.Post("/contact", contact.Create)

	// Gated surface.
	r.Group(func(r chi.Router) {
		r.Use(requireAuth(deps.Gate))

		r.Post("/services", services.Create)
		r.Put("/services/{id}", services.Update)
		r.Delete("/services/{id}", services.Delete)

		r.Post("/gallery", gallery.Create)
		r.Put("/gallery/{id}", gallery.Update)
		r.Delete("/gallery/{id}", gallery.Delete)

		r.Put("/settings", settings.Update)

		r.Get("/contact", contact.List)
		r.Get("/contact/{id}", contact.Get)
		r.Put("/contact/{id}", contact.MarkRead)
		r.Delete("/contact/{id}", contact.Delete)

		r.Post("/uploads", uploads.Create)
	})

	return r
}

// requireAuth runs the shared authentication gate before a handler.
// The Recoverer middleware above this router guarantees a panic inside the
// check surfaces as a 500, never as a crashed connection.
func requireAuth(gate *auth.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result := gate.Authenticate(r)
			if !result.Allowed {
				metrics.GateDenialsTotal.WithLabelValues("api").Inc()
				writeError(w, http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), result.User)))
		})
	}
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

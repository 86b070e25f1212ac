package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/auth"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// PublicHandler serves the marketing pages.
type PublicHandler struct {
	settings store.SettingsStoreIface
	services store.ServiceStoreIface
	gallery  store.GalleryStoreIface
	authSvc  *auth.Service
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(settings store.SettingsStoreIface, services store.ServiceStoreIface, gallery store.GalleryStoreIface, authSvc *auth.Service) *PublicHandler {
	return &PublicHandler{settings: settings, services: services, gallery: gallery, authSvc: authSvc}
}

// basePage assembles layout data: current settings and the session user.
// A settings read failure falls back to the defaults so public pages render
// even when the database is degraded.
func (h *PublicHandler) basePage(r *http.Request) BasePage {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		log.Printf("handler: load settings: %v", err)
		settings = store.DefaultSettings()
	}
	return BasePage{
		Settings: settings,
		User:     h.authSvc.SessionUser(r.Context()),
		Path:     r.URL.Path,
	}
}

type homePage struct {
	BasePage
	Featured []*store.Service
}

// Home serves GET /: the hero section plus up to three featured services.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ListAll(r.Context())
	if err != nil {
		log.Printf("handler: home services: %v", err)
	}
	if len(services) > 3 {
		services = services[:3]
	}
	render(w, "home.html", homePage{BasePage: h.basePage(r), Featured: services})
}

type servicesPage struct {
	BasePage
	Services []*store.Service
}

// Services serves GET /services with the full service catalog.
func (h *PublicHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ListAll(r.Context())
	if err != nil {
		log.Printf("handler: list services: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "services.html", servicesPage{BasePage: h.basePage(r), Services: services})
}

type galleryPage struct {
	BasePage
	Images     []*store.GalleryImage
	Categories []string
	Active     string
}

// Gallery serves GET /gallery, optionally filtered by ?category=.
func (h *PublicHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("category")

	images, err := h.gallery.List(r.Context(), active)
	if err != nil {
		log.Printf("handler: list gallery: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Category tabs come from the full set, not the filtered one.
	all := images
	if active != "" && active != "all" {
		if all, err = h.gallery.List(r.Context(), ""); err != nil {
			log.Printf("handler: gallery categories: %v", err)
			all = images
		}
	}
	seen := map[string]bool{}
	var categories []string
	for _, img := range all {
		if !seen[img.Category] {
			seen[img.Category] = true
			categories = append(categories, img.Category)
		}
	}

	render(w, "gallery.html", galleryPage{
		BasePage:   h.basePage(r),
		Images:     images,
		Categories: categories,
		Active:     active,
	})
}

// About serves GET /about.
func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	render(w, "about.html", h.basePage(r))
}

type contactPage struct {
	BasePage
	Services []*store.Service
}

// Contact serves GET /contact. The service list feeds the inquiry dropdown;
// the form itself posts to the JSON API.
func (h *PublicHandler) Contact(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ListAll(r.Context())
	if err != nil {
		log.Printf("handler: contact services: %v", err)
	}
	render(w, "contact.html", contactPage{BasePage: h.basePage(r), Services: services})
}

// MaintenanceMode intercepts public page requests while the site is in
// maintenance. The admin area, the API, and assets stay reachable so an
// administrator can turn the mode back off.
func (h *PublicHandler) MaintenanceMode(next http.Handler) http.Handler {
	exempt := []string{"/admin", "/api", "/auth", "/static", "/uploads", "/metrics"}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range exempt {
			if r.URL.Path == p || strings.HasPrefix(r.URL.Path, p+"/") {
				next.ServeHTTP(w, r)
				return
			}
		}

		settings, err := h.settings.Get(r.Context())
		if err != nil || !settings.MaintenanceMode {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		render(w, "maintenance.html", BasePage{Settings: settings, Path: r.URL.Path})
	})
}

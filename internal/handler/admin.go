package handler

import (
	"log"
	"net/http"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/auth"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// AdminHandler serves the back-office pages. The page gate upstream has
// already decided access; these handlers only render.
type AdminHandler struct {
	settings   store.SettingsStoreIface
	services   store.ServiceStoreIface
	gallery    store.GalleryStoreIface
	contact    *store.ContactStore
	authSvc    *auth.Service
	ssoEnabled bool
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(settings store.SettingsStoreIface, services store.ServiceStoreIface, gallery store.GalleryStoreIface, contact *store.ContactStore, authSvc *auth.Service, ssoEnabled bool) *AdminHandler {
	return &AdminHandler{
		settings:   settings,
		services:   services,
		gallery:    gallery,
		contact:    contact,
		authSvc:    authSvc,
		ssoEnabled: ssoEnabled,
	}
}

func (h *AdminHandler) basePage(r *http.Request) BasePage {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		log.Printf("handler: load settings: %v", err)
		settings = store.DefaultSettings()
	}
	user := auth.UserFromContext(r.Context())
	if user == nil {
		user = h.authSvc.SessionUser(r.Context())
	}
	return BasePage{Settings: settings, User: user, Path: r.URL.Path}
}

type loginPage struct {
	BasePage
	From       string
	HasError   bool
	SSOEnabled bool
}

// Login serves GET /admin/login. Signed-in users are sent straight to the
// dashboard.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.authSvc.IsAuthenticated(r.Context()) {
		http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
		return
	}
	render(w, "admin/login.html", loginPage{
		BasePage:   h.basePage(r),
		From:       r.URL.Query().Get("from"),
		HasError:   r.URL.Query().Get("error") != "",
		SSOEnabled: h.ssoEnabled,
	})
}

type dashboardPage struct {
	BasePage
	ServiceCount int
	GalleryCount int
	UnreadCount  int64
}

// Dashboard serves GET /admin/dashboard with content counts and the unread
// inbox badge.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := dashboardPage{BasePage: h.basePage(r)}

	if services, err := h.services.ListAll(r.Context()); err == nil {
		page.ServiceCount = len(services)
	}
	if images, err := h.gallery.List(r.Context(), ""); err == nil {
		page.GalleryCount = len(images)
	}
	if n, err := h.contact.UnreadCount(r.Context()); err == nil {
		page.UnreadCount = n
	} else {
		log.Printf("handler: unread count: %v", err)
	}

	render(w, "admin/dashboard.html", page)
}

// Services serves GET /admin/services, the service management screen.
func (h *AdminHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ListAll(r.Context())
	if err != nil {
		log.Printf("handler: admin services: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "admin/services.html", servicesPage{BasePage: h.basePage(r), Services: services})
}

// Gallery serves GET /admin/gallery, the gallery management screen.
func (h *AdminHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.gallery.List(r.Context(), "")
	if err != nil {
		log.Printf("handler: admin gallery: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, "admin/gallery.html", galleryPage{BasePage: h.basePage(r), Images: images})
}

type inboxPage struct {
	BasePage
	Submissions []*store.ContactSubmission
	UnreadCount int64
}

// ContactInbox serves GET /admin/contact, newest submissions first.
func (h *AdminHandler) ContactInbox(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contact.ListAll(r.Context())
	if err != nil {
		log.Printf("handler: contact inbox: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	unread, _ := h.contact.UnreadCount(r.Context())
	render(w, "admin/contact.html", inboxPage{BasePage: h.basePage(r), Submissions: subs, UnreadCount: unread})
}

// Settings serves GET /admin/settings, the site settings form.
func (h *AdminHandler) Settings(w http.ResponseWriter, r *http.Request) {
	render(w, "admin/settings.html", h.basePage(r))
}

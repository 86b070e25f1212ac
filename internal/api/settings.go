package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// settingsHandler serves the singleton site settings record.
type settingsHandler struct {
	settings store.SettingsStoreIface
}

// Get returns the site settings, or the documented defaults when no row
// exists yet. Never 404s.
// GET /api/settings
//
// @Summary      Get site settings
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  SettingsResponse
// @Failure      500  {object}  errorBody
// @Router       /settings [get]
func (h *settingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Get(r.Context())
	if err != nil {
		log.Printf("api: get settings: %v", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching site settings", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Update upserts the singleton settings row: created if absent, updated in
// place otherwise.
// PUT /api/settings
//
// @Summary      Update site settings
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        body  body      SettingsRequest  true  "Settings"
// @Success      200   {object}  SettingsResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      500   {object}  errorBody
// @Security     BearerToken
// @Router       /settings [put]
func (h *settingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if req.SiteName == "" {
		writeError(w, http.StatusBadRequest, "Site name is required", "BAD_REQUEST")
		return
	}
	if err := store.ValidateHexColor(req.PrimaryColor); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_COLOR")
		return
	}
	if err := store.ValidateHexColor(req.SecondaryColor); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_COLOR")
		return
	}

	// Omitted optional fields keep their current values. Before the first
	// write the store serves the defaults, so the create path fills from
	// those; after that a partial update cannot blank out customized
	// contact details.
	current, err := h.settings.Get(r.Context())
	if err != nil {
		log.Printf("api: load settings for update: %v", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while updating site settings", "INTERNAL_ERROR")
		return
	}
	s := &store.SiteSettings{
		SiteName:        req.SiteName,
		ContactEmail:    orCurrent(req.ContactEmail, current.ContactEmail),
		ContactPhone:    orCurrent(req.ContactPhone, current.ContactPhone),
		Address:         orCurrent(req.Address, current.Address),
		BusinessHours:   orCurrent(req.BusinessHours, current.BusinessHours),
		MaintenanceMode: req.MaintenanceMode,
		PrimaryColor:    orCurrent(req.PrimaryColor, current.PrimaryColor),
		SecondaryColor:  orCurrent(req.SecondaryColor, current.SecondaryColor),
	}

	updated, err := h.settings.Upsert(r.Context(), s)
	if err != nil {
		log.Printf("api: update settings: %v", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while updating site settings", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toSettingsResponse(updated))
}

func orCurrent(v, current string) string {
	if v == "" {
		return current
	}
	return v
}

func toSettingsResponse(s *store.SiteSettings) SettingsResponse {
	return SettingsResponse{
		ID:              s.ID,
		SiteName:        s.SiteName,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		Address:         s.Address,
		BusinessHours:   s.BusinessHours,
		MaintenanceMode: s.MaintenanceMode,
		PrimaryColor:    s.PrimaryColor,
		SecondaryColor:  s.SecondaryColor,
		UpdatedAt:       s.UpdatedAt,
	}
}

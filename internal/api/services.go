package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// servicesHandler provides REST handlers for the services resource.
type servicesHandler struct {
	services store.ServiceStoreIface
}

// idParam parses the {id} URL parameter. A non-numeric id cannot match any
// row, so it reports the same not-found condition as an absent id.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

// List returns all services ordered by id.
// GET /api/services
//
// @Summary      List services
// @Description  Returns all services ordered by id.
// @Tags         Services
// @Produce      json
// @Success      200  {array}   ServiceResponse
// @Failure      500  {object}  errorBody
// @Router       /services [get]
func (h *servicesHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.services.ListAll(r.Context())
	if err != nil {
		log.Printf("api: list services: %v", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching services", "INTERNAL_ERROR")
		return
	}

	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single service by id.
// GET /api/services/{id}
//
// @Summary      Get a service
// @Tags         Services
// @Produce      json
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  ServiceResponse
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /services/{id} [get]
func (h *servicesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Service not found", "NOT_FOUND")
		return
	}

	svc, err := h.services.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Service not found", "NOT_FOUND")
			return
		}
		log.Printf("api: get service %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching the service", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

// Create adds a new service.
// POST /api/services
//
// @Summary      Create a service
// @Tags         Services
// @Accept       json
// @Produce      json
// @Param        body  body      ServiceRequest  true  "Service to create"
// @Success      201   {object}  ServiceResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      500   {object}  errorBody
// @Security     BearerToken
// @Router       /services [post]
func (h *servicesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if req.Name == "" || req.Description == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "Name, description, and category are required", "BAD_REQUEST")
		return
	}

	svc, err := h.services.Create(r.Context(), req.Name, req.Description, req.PriceRange, req.ImageURL, req.Category, req.Features)
	if err != nil {
		log.Printf("api: create service %q: %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while creating the service", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusCreated, toServiceResponse(svc))
}

// Update replaces a service's fields.
// PUT /api/services/{id}
//
// @Summary      Update a service
// @Tags         Services
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Service ID"
// @Param        body  body      ServiceRequest  true  "Fields to update"
// @Success      200   {object}  ServiceResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Failure      500   {object}  errorBody
// @Security     BearerToken
// @Router       /services/{id} [put]
func (h *servicesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Service not found", "NOT_FOUND")
		return
	}

	var req ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Name == "" || req.Description == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "Name, description, and category are required", "BAD_REQUEST")
		return
	}

	svc, err := h.services.Update(r.Context(), id, req.Name, req.Description, req.PriceRange, req.ImageURL, req.Category, req.Features)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Service not found", "NOT_FOUND")
			return
		}
		log.Printf("api: update service %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while updating the service", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

// Delete removes a service by id.
// DELETE /api/services/{id}
//
// @Summary      Delete a service
// @Tags         Services
// @Produce      json
// @Param        id   path      int  true  "Service ID"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Security     BearerToken
// @Router       /services/{id} [delete]
func (h *servicesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Service not found", "NOT_FOUND")
		return
	}

	if err := h.services.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Service not found", "NOT_FOUND")
			return
		}
		log.Printf("api: delete service %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while deleting the service", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func toServiceResponse(s *store.Service) ServiceResponse {
	features := []string(s.Features)
	if features == nil {
		features = []string{}
	}
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		PriceRange:  s.PriceRange,
		Features:    features,
		ImageURL:    s.ImageURL,
		Category:    s.Category,
		CreatedAt:   s.CreatedAt,
	}
}

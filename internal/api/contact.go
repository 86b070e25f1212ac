package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/metrics"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// contactHandler provides the public contact form endpoint and the gated
// inbox operations.
type contactHandler struct {
	contact store.ContactStoreIface
}

// Create records a contact form submission. This is the only public write
// in the API.
// POST /api/contact
//
// @Summary      Submit the contact form
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        body  body      ContactRequest  true  "Submission"
// @Success      201   {object}  map[string]bool
// @Failure      400   {object}  errorBody
// @Failure      500   {object}  errorBody
// @Router       /contact [post]
func (h *contactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Name, email, and message are required", "BAD_REQUEST")
		return
	}

	if _, err := h.contact.Create(r.Context(), req.Name, req.Email, req.Phone, req.Service, req.Message); err != nil {
		log.Printf("api: create contact submission from %q: %v", req.Email, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while submitting your message", "INTERNAL_ERROR")
		return
	}

	metrics.ContactSubmissionsTotal.Inc()
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// List returns all submissions newest first.
// GET /api/contact
//
// @Summary      List contact submissions
// @Tags         Contact
// @Produce      json
// @Success      200  {array}   ContactResponse
// @Failure      401  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Security     BearerToken
// @Router       /contact [get]
func (h *contactHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contact.ListAll(r.Context())
	if err != nil {
		log.Printf("api: list contact submissions: %v", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching contact submissions", "INTERNAL_ERROR")
		return
	}

	resp := make([]ContactResponse, 0, len(subs))
	for _, sub := range subs {
		resp = append(resp, toContactResponse(sub))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single submission by id.
// GET /api/contact/{id}
//
// @Summary      Get a contact submission
// @Tags         Contact
// @Produce      json
// @Param        id   path      int  true  "Submission ID"
// @Success      200  {object}  ContactResponse
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Security     BearerToken
// @Router       /contact/{id} [get]
func (h *contactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Contact submission not found", "NOT_FOUND")
		return
	}

	sub, err := h.contact.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact submission not found", "NOT_FOUND")
			return
		}
		log.Printf("api: get contact submission %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching the contact submission", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toContactResponse(sub))
}

// MarkRead flags a submission as read. Idempotent.
// PUT /api/contact/{id}
//
// @Summary      Mark a contact submission as read
// @Tags         Contact
// @Produce      json
// @Param        id   path      int  true  "Submission ID"
// @Success      200  {object}  ContactResponse
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Security     BearerToken
// @Router       /contact/{id} [put]
func (h *contactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Contact submission not found", "NOT_FOUND")
		return
	}

	sub, err := h.contact.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact submission not found", "NOT_FOUND")
			return
		}
		log.Printf("api: mark contact submission %d read: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while updating the contact submission", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toContactResponse(sub))
}

// Delete removes a submission by id.
// DELETE /api/contact/{id}
//
// @Summary      Delete a contact submission
// @Tags         Contact
// @Produce      json
// @Param        id   path      int  true  "Submission ID"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Security     BearerToken
// @Router       /contact/{id} [delete]
func (h *contactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Contact submission not found", "NOT_FOUND")
		return
	}

	if err := h.contact.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Contact submission not found", "NOT_FOUND")
			return
		}
		log.Printf("api: delete contact submission %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while deleting the contact submission", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func toContactResponse(sub *store.ContactSubmission) ContactResponse {
	return ContactResponse{
		ID:        sub.ID,
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Service:   sub.Service,
		Message:   sub.Message,
		Read:      sub.Read,
		CreatedAt: sub.CreatedAt,
	}
}

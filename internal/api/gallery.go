package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
)

// galleryHandler provides REST handlers for the gallery resource.
type galleryHandler struct {
	gallery store.GalleryStoreIface
}

// List returns gallery images newest first, optionally filtered by category.
// GET /api/gallery?category=
//
// @Summary      List gallery images
// @Description  Returns gallery images newest first. ?category= filters; "all" and empty return everything.
// @Tags         Gallery
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {array}   GalleryImageResponse
// @Failure      500       {object}  errorBody
// @Router       /gallery [get]
func (h *galleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.gallery.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("api: list gallery: %v", err)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching gallery images", "INTERNAL_ERROR")
		return
	}

	resp := make([]GalleryImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, toGalleryResponse(img))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get returns a single gallery image by id.
// GET /api/gallery/{id}
//
// @Summary      Get a gallery image
// @Tags         Gallery
// @Produce      json
// @Param        id   path      int  true  "Image ID"
// @Success      200  {object}  GalleryImageResponse
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Router       /gallery/{id} [get]
func (h *galleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Gallery image not found", "NOT_FOUND")
		return
	}

	img, err := h.gallery.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery image not found", "NOT_FOUND")
			return
		}
		log.Printf("api: get gallery image %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching the gallery image", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toGalleryResponse(img))
}

// Create adds a new gallery image record.
// POST /api/gallery
//
// @Summary      Create a gallery image
// @Tags         Gallery
// @Accept       json
// @Produce      json
// @Param        body  body      GalleryImageRequest  true  "Image to create"
// @Success      201   {object}  GalleryImageResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      500   {object}  errorBody
// @Security     BearerToken
// @Router       /gallery [post]
func (h *galleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req GalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if req.Title == "" || req.ImageURL == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "Title, image URL, and category are required", "BAD_REQUEST")
		return
	}

	img, err := h.gallery.Create(r.Context(), req.Title, req.Description, req.ImageURL, req.Category)
	if err != nil {
		log.Printf("api: create gallery image %q: %v", req.Title, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while uploading the gallery image", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusCreated, toGalleryResponse(img))
}

// Update replaces a gallery image's fields.
// PUT /api/gallery/{id}
//
// @Summary      Update a gallery image
// @Tags         Gallery
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Image ID"
// @Param        body  body      GalleryImageRequest  true  "Fields to update"
// @Success      200   {object}  GalleryImageResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      404   {object}  errorBody
// @Failure      500   {object}  errorBody
// @Security     BearerToken
// @Router       /gallery/{id} [put]
func (h *galleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Gallery image not found", "NOT_FOUND")
		return
	}

	var req GalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}
	if req.Title == "" || req.ImageURL == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "Title, image URL, and category are required", "BAD_REQUEST")
		return
	}

	img, err := h.gallery.Update(r.Context(), id, req.Title, req.Description, req.ImageURL, req.Category)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery image not found", "NOT_FOUND")
			return
		}
		log.Printf("api: update gallery image %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while updating the gallery image", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, toGalleryResponse(img))
}

// Delete removes a gallery image by id.
// DELETE /api/gallery/{id}
//
// @Summary      Delete a gallery image
// @Tags         Gallery
// @Produce      json
// @Param        id   path      int  true  "Image ID"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Failure      500  {object}  errorBody
// @Security     BearerToken
// @Router       /gallery/{id} [delete]
func (h *galleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Gallery image not found", "NOT_FOUND")
		return
	}

	if err := h.gallery.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Gallery image not found", "NOT_FOUND")
			return
		}
		log.Printf("api: delete gallery image %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while deleting the gallery image", "INTERNAL_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func toGalleryResponse(img *store.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:          img.ID,
		Title:       img.Title,
		Description: img.Description,
		ImageURL:    img.ImageURL,
		Category:    img.Category,
		CreatedAt:   img.CreatedAt,
	}
}

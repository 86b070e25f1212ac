package api

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/metrics"
)

// maxUploadBytes caps image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// uploadsHandler stores uploaded images under a local directory served
// at /uploads/.
type uploadsHandler struct {
	dir string
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Create accepts a multipart upload in the "image" field and returns the
// public URL of the stored file. Filenames are regenerated server-side so
// client names never reach the filesystem.
// POST /api/uploads
//
// @Summary      Upload an image
// @Tags         Uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      201    {object}  UploadResponse
// @Failure      400    {object}  errorBody
// @Failure      401    {object}  errorBody
// @Failure      500    {object}  errorBody
// @Security     BearerToken
// @Router       /uploads [post]
func (h *uploadsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Image file is required", "BAD_REQUEST")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Image file is required", "BAD_REQUEST")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		writeError(w, http.StatusBadRequest, "File must be an image", "BAD_REQUEST")
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		log.Printf("api: create uploads dir %q: %v", h.dir, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while saving the image", "INTERNAL_ERROR")
		return
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		log.Printf("api: create upload file %q: %v", name, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while saving the image", "INTERNAL_ERROR")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		log.Printf("api: write upload file %q: %v", name, err)
		writeError(w, http.StatusInternalServerError, "An error occurred while saving the image", "INTERNAL_ERROR")
		return
	}

	metrics.UploadsTotal.Inc()
	writeJSON(w, http.StatusCreated, UploadResponse{ImageURL: "/uploads/" + name})
}

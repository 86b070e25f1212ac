package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/api"
)

func TestGalleryListAndFilter(t *testing.T) {
	env := newTestEnv(t)
	env.seedGalleryImage("before", "cleanup")
	env.seedGalleryImage("after", "cleanup")
	env.seedGalleryImage("stripes", "mowing")

	rec := env.do(http.MethodGet, "/gallery", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	all := decodeJSON[[]api.GalleryImageResponse](t, rec)
	if len(all) != 3 {
		t.Fatalf("expected 3 images, got %d", len(all))
	}

	// "all" behaves like no filter.
	rec = env.do(http.MethodGet, "/gallery?category=all", nil, false)
	if got := decodeJSON[[]api.GalleryImageResponse](t, rec); len(got) != 3 {
		t.Fatalf("category=all: expected 3 images, got %d", len(got))
	}

	rec = env.do(http.MethodGet, "/gallery?category=cleanup", nil, false)
	filtered := decodeJSON[[]api.GalleryImageResponse](t, rec)
	if len(filtered) != 2 {
		t.Fatalf("category=cleanup: expected 2 images, got %d", len(filtered))
	}
	for _, img := range filtered {
		if img.Category != "cleanup" {
			t.Fatalf("filter leaked image %+v", img)
		}
	}

	// A category with no rows returns an empty array, not an error.
	rec = env.do(http.MethodGet, "/gallery?category=hardscaping", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty category: expected 200, got %d", rec.Code)
	}
	if got := decodeJSON[[]api.GalleryImageResponse](t, rec); len(got) != 0 {
		t.Fatalf("empty category: expected 0 images, got %d", len(got))
	}
}

func TestGalleryCRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/gallery", api.GalleryImageRequest{
		Title:    "Spring cleanup",
		ImageURL: "/uploads/spring.jpg",
		Category: "cleanup",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeJSON[api.GalleryImageResponse](t, rec)

	rec = env.do(http.MethodPut, fmt.Sprintf("/gallery/%d", created.ID), api.GalleryImageRequest{
		Title:       "Spring cleanup (before)",
		Description: "front yard",
		ImageURL:    "/uploads/spring-before.jpg",
		Category:    "cleanup",
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", rec.Code)
	}
	updated := decodeJSON[api.GalleryImageResponse](t, rec)
	if updated.Title != "Spring cleanup (before)" || updated.Description != "front yard" {
		t.Fatalf("update did not apply: %+v", updated)
	}

	rec = env.do(http.MethodDelete, fmt.Sprintf("/gallery/%d", created.ID), nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	rec = env.do(http.MethodGet, fmt.Sprintf("/gallery/%d", created.ID), nil, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestGalleryValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/gallery", api.GalleryImageRequest{Title: "no url"}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeJSON[errorBody](t, rec)
	if body.Error != "Title, image URL, and category are required" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestGalleryWritesRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	img := env.seedGalleryImage("locked", "mowing")

	rec := env.do(http.MethodPost, "/gallery", api.GalleryImageRequest{Title: "x", ImageURL: "/y", Category: "z"}, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("create: expected 401, got %d", rec.Code)
	}
	rec = env.do(http.MethodDelete, fmt.Sprintf("/gallery/%d", img.ID), nil, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("delete: expected 401, got %d", rec.Code)
	}
}

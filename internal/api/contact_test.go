package api_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/api"
)

func TestContactSubmitPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/contact", api.ContactRequest{
		Name:    "Pat Lawnless",
		Email:   "pat@example.com",
		Phone:   "555-0100",
		Service: "mowing",
		Message: "Quote for a quarter acre, please.",
	}, false)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeJSON[map[string]bool](t, rec)
	if !body["success"] {
		t.Fatalf("unexpected body: %v", body)
	}

	// The submission landed unread.
	rec = env.do(http.MethodGet, "/contact", nil, true)
	subs := decodeJSON[[]api.ContactResponse](t, rec)
	if len(subs) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(subs))
	}
	if subs[0].Read {
		t.Fatal("new submission must start unread")
	}
	if subs[0].Name != "Pat Lawnless" || subs[0].Service != "mowing" {
		t.Fatalf("unexpected submission: %+v", subs[0])
	}
}

func TestContactSubmitValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/contact", api.ContactRequest{Name: "No Message", Email: "x@example.com"}, false)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeJSON[errorBody](t, rec)
	if body.Error != "Name, email, and message are required" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestContactMarkReadIdempotent(t *testing.T) {
	env := newTestEnv(t)
	sub := env.seedContact("reader")

	rec := env.do(http.MethodPut, fmt.Sprintf("/contact/%d", sub.ID), nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("first mark: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	first := decodeJSON[api.ContactResponse](t, rec)
	if !first.Read {
		t.Fatal("submission should be read after mark")
	}

	// Marking again succeeds and changes nothing.
	rec = env.do(http.MethodPut, fmt.Sprintf("/contact/%d", sub.ID), nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("second mark: expected 200, got %d", rec.Code)
	}
	second := decodeJSON[api.ContactResponse](t, rec)
	if !second.Read {
		t.Fatal("submission should stay read")
	}
}

func TestContactInboxRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	sub := env.seedContact("private")

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/contact"},
		{http.MethodGet, fmt.Sprintf("/contact/%d", sub.ID)},
		{http.MethodPut, fmt.Sprintf("/contact/%d", sub.ID)},
		{http.MethodDelete, fmt.Sprintf("/contact/%d", sub.ID)},
	}
	for _, tc := range cases {
		rec := env.do(tc.method, tc.path, nil, false)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestContactDelete(t *testing.T) {
	env := newTestEnv(t)
	sub := env.seedContact("gone")

	rec := env.do(http.MethodDelete, fmt.Sprintf("/contact/%d", sub.ID), nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = env.do(http.MethodGet, fmt.Sprintf("/contact/%d", sub.ID), nil, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "yard.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write([]byte("fake-jpeg-bytes"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/uploads", &buf)
	req.Host = "example.com:8080"
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.bearerToken())

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeJSON[api.UploadResponse](t, rec)
	if !strings.HasPrefix(resp.ImageURL, "/uploads/") {
		t.Fatalf("unexpected image url: %q", resp.ImageURL)
	}
	// Server generates the name; the client name never appears.
	if resp.ImageURL == "/uploads/yard.jpg" {
		t.Fatal("upload must not keep the client filename")
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("image", "notes.txt")
	part.Write([]byte("plain text"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/uploads", &buf)
	req.Host = "example.com:8080"
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.bearerToken())

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/uploads", bytes.NewReader(nil))
	req.Host = "example.com:8080"

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

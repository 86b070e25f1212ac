package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/api"
)

func TestServicesListEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/services", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	list := decodeJSON[[]api.ServiceResponse](t, rec)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d items", len(list))
	}
	// An empty collection must serialize as [], not null.
	if got := rec.Body.String(); got != "[]\n" && got != "[]" {
		t.Fatalf("expected JSON array, got %q", got)
	}
}

func TestServicesCRUD(t *testing.T) {
	env := newTestEnv(t)

	// Create.
	rec := env.do(http.MethodPost, "/services", api.ServiceRequest{
		Name:        "Lawn Mowing",
		Description: "Weekly mowing and edging",
		PriceRange:  "$40-$80",
		Features:    []string{"edging", "cleanup"},
		Category:    "maintenance",
	}, true)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeJSON[api.ServiceResponse](t, rec)
	if created.ID == 0 || created.Name != "Lawn Mowing" {
		t.Fatalf("unexpected created service: %+v", created)
	}

	// Read back.
	rec = env.do(http.MethodGet, fmt.Sprintf("/services/%d", created.ID), nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	got := decodeJSON[api.ServiceResponse](t, rec)
	if got.Description != "Weekly mowing and edging" || len(got.Features) != 2 {
		t.Fatalf("unexpected service: %+v", got)
	}

	// Update.
	rec = env.do(http.MethodPut, fmt.Sprintf("/services/%d", created.ID), api.ServiceRequest{
		Name:        "Lawn Mowing Plus",
		Description: "Weekly mowing, edging, and blowing",
		Category:    "maintenance",
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeJSON[api.ServiceResponse](t, rec)
	if updated.Name != "Lawn Mowing Plus" {
		t.Fatalf("update did not apply: %+v", updated)
	}
	if updated.Features == nil {
		t.Fatal("features must serialize as an array, not null")
	}

	// Delete.
	rec = env.do(http.MethodDelete, fmt.Sprintf("/services/%d", created.ID), nil, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}
	rec = env.do(http.MethodGet, fmt.Sprintf("/services/%d", created.ID), nil, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestServicesValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/services", api.ServiceRequest{Name: "No Category", Description: "x"}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeJSON[errorBody](t, rec)
	if body.Error != "Name, description, and category are required" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestServicesNotFound(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/services/9999", "/services/abc"} {
		rec := env.do(http.MethodGet, path, nil, false)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, rec.Code)
		}
		body := decodeJSON[errorBody](t, rec)
		if body.Error != "Service not found" {
			t.Fatalf("%s: unexpected error message %q", path, body.Error)
		}
	}

	rec := env.do(http.MethodPut, "/services/9999", api.ServiceRequest{Name: "a", Description: "b", Category: "c"}, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: expected 404, got %d", rec.Code)
	}
	rec = env.do(http.MethodDelete, "/services/9999", nil, true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("delete missing: expected 404, got %d", rec.Code)
	}
}

func TestServicesWritesRequireAuth(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService("Aeration")

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/services", api.ServiceRequest{Name: "a", Description: "b", Category: "c"}},
		{http.MethodPut, fmt.Sprintf("/services/%d", svc.ID), api.ServiceRequest{Name: "a", Description: "b", Category: "c"}},
		{http.MethodDelete, fmt.Sprintf("/services/%d", svc.ID), nil},
	}
	for _, tc := range cases {
		rec := env.do(tc.method, tc.path, tc.body, false)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
		body := decodeJSON[errorBody](t, rec)
		if body.Error != "Unauthorized" {
			t.Fatalf("unexpected error body: %+v", body)
		}
	}

	// The rows must be untouched.
	rec := env.do(http.MethodGet, fmt.Sprintf("/services/%d", svc.ID), nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("service should still exist, got %d", rec.Code)
	}
}

func TestServicesRejectsBadToken(t *testing.T) {
	env := newTestEnv(t)

	req := env.do(http.MethodPost, "/services", api.ServiceRequest{Name: "a", Description: "b", Category: "c"}, false)
	if req.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", req.Code)
	}

	rec := env.doWithToken(http.MethodPost, "/services",
		api.ServiceRequest{Name: "a", Description: "b", Category: "c"}, "not-a-jwt")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", rec.Code)
	}
}

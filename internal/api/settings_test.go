package api_test

import (
	"net/http"
	"testing"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/api"
)

func TestSettingsGetServesDefaults(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/settings", nil, false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decodeJSON[api.SettingsResponse](t, rec)
	if got.SiteName != "Lawn Care Pro" {
		t.Fatalf("unexpected default site name: %q", got.SiteName)
	}
	if got.PrimaryColor != "#16a34a" || got.SecondaryColor != "#166534" {
		t.Fatalf("unexpected default colors: %q %q", got.PrimaryColor, got.SecondaryColor)
	}
	if got.MaintenanceMode {
		t.Fatal("maintenance mode must default to off")
	}
}

func TestSettingsUpsertRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	// First PUT creates the row.
	rec := env.do(http.MethodPut, "/settings", api.SettingsRequest{
		SiteName:     "Greener Pastures",
		ContactEmail: "hello@greenerpastures.test",
		PrimaryColor: "#00aa00",
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("first put: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	first := decodeJSON[api.SettingsResponse](t, rec)
	if first.SiteName != "Greener Pastures" || first.ContactEmail != "hello@greenerpastures.test" {
		t.Fatalf("unexpected settings after create: %+v", first)
	}
	// Fields omitted from the first write fill from the defaults.
	if first.ContactPhone != "(555) 123-4567" {
		t.Fatalf("omitted phone should fall back to default, got %q", first.ContactPhone)
	}

	// Second PUT updates the same row.
	rec = env.do(http.MethodPut, "/settings", api.SettingsRequest{
		SiteName:        "Greener Pastures LLC",
		MaintenanceMode: true,
	}, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("second put: expected 200, got %d", rec.Code)
	}
	second := decodeJSON[api.SettingsResponse](t, rec)
	if second.ID != first.ID {
		t.Fatalf("settings row must stay a singleton: first id %d, second id %d", first.ID, second.ID)
	}
	if !second.MaintenanceMode {
		t.Fatal("maintenance mode update did not apply")
	}
	// Fields omitted from a later write keep the stored values, not the
	// defaults.
	if second.ContactEmail != "hello@greenerpastures.test" {
		t.Fatalf("omitted email was clobbered: %q", second.ContactEmail)
	}
	if second.PrimaryColor != "#00aa00" {
		t.Fatalf("omitted color was clobbered: %q", second.PrimaryColor)
	}

	// GET reflects the stored row, not the defaults.
	rec = env.do(http.MethodGet, "/settings", nil, false)
	got := decodeJSON[api.SettingsResponse](t, rec)
	if got.SiteName != "Greener Pastures LLC" {
		t.Fatalf("get after put: unexpected site name %q", got.SiteName)
	}
	if got.ContactEmail != "hello@greenerpastures.test" {
		t.Fatalf("get after put: unexpected contact email %q", got.ContactEmail)
	}
}

func TestSettingsValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/settings", api.SettingsRequest{SiteName: ""}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty site name: expected 400, got %d", rec.Code)
	}

	rec = env.do(http.MethodPut, "/settings", api.SettingsRequest{
		SiteName:     "Bad Colors Inc",
		PrimaryColor: "green",
	}, true)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad color: expected 400, got %d", rec.Code)
	}

	// Nothing was persisted by the rejected writes.
	rec = env.do(http.MethodGet, "/settings", nil, false)
	got := decodeJSON[api.SettingsResponse](t, rec)
	if got.SiteName != "Lawn Care Pro" {
		t.Fatalf("rejected write leaked into storage: %q", got.SiteName)
	}
}

func TestSettingsUpdateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPut, "/settings", api.SettingsRequest{SiteName: "Sneaky"}, false)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

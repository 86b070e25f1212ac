package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"

	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/api"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/auth"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/store"
	"github.com/ElectrumIsPog/Lawn-Care-Template/internal/testutil"
)

const testJWTSecret = "test-secret"

// errorBody mirrors the API's JSON error envelope.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type testEnv struct {
	t        *testing.T
	db       *sqlx.DB
	handler  http.Handler
	services *store.ServiceStore
	gallery  *store.GalleryStore
	settings *store.SettingsStore
	contact  *store.ContactStore
	users    *store.UserStore
}

// newTestEnv wires a full API router over an in-memory database, with the
// session middleware installed the same way the server does it.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database := testutil.NewTestDB(t)

	services := store.NewServiceStore(database)
	gallery := store.NewGalleryStore(database)
	settings := store.NewSettingsStore(database)
	contact := store.NewContactStore(database)
	users := store.NewUserStore(database)

	sessions := auth.NewSessionManager(database, "sqlite3", time.Hour)
	gate := auth.NewGate(sessions, users, testJWTSecret, false)

	router := api.NewAPIRouter(api.Deps{
		Gate:          gate,
		ServiceStore:  services,
		GalleryStore:  gallery,
		SettingsStore: settings,
		ContactStore:  contact,
		UploadsDir:    t.TempDir(),
	})

	return &testEnv{
		t:        t,
		db:       database,
		handler:  sessions.LoadAndSave(router),
		services: services,
		gallery:  gallery,
		settings: settings,
		contact:  contact,
		users:    users,
	}
}

// bearerToken signs a short-lived HS256 token accepted by the gate.
func (e *testEnv) bearerToken() string {
	e.t.Helper()
	claims := jwt.MapClaims{
		"sub":   "test-caller",
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		e.t.Fatalf("sign test token: %v", err)
	}
	return token
}

// do executes a request against the router. Body may be nil; a non-nil
// body is JSON-encoded. authed attaches a valid Bearer token.
func (e *testEnv) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Host = "example.com:8080"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.bearerToken())
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// doWithToken is do with an explicit Authorization bearer value.
func (e *testEnv) doWithToken(method, path string, body any, token string) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Host = "example.com:8080"
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// seedService inserts a service row directly through the store.
func (e *testEnv) seedService(name string) *store.Service {
	e.t.Helper()
	svc, err := e.services.Create(context.Background(), name, "desc for "+name, "$50-$100", "/uploads/x.jpg", "maintenance", []string{"weekly"})
	if err != nil {
		e.t.Fatalf("seed service: %v", err)
	}
	return svc
}

// seedGalleryImage inserts a gallery row directly through the store.
func (e *testEnv) seedGalleryImage(title, category string) *store.GalleryImage {
	e.t.Helper()
	img, err := e.gallery.Create(context.Background(), title, "", "/uploads/"+title+".jpg", category)
	if err != nil {
		e.t.Fatalf("seed gallery image: %v", err)
	}
	return img
}

// seedContact inserts a contact submission directly through the store.
func (e *testEnv) seedContact(name string) *store.ContactSubmission {
	e.t.Helper()
	sub, err := e.contact.Create(context.Background(), name, name+"@example.com", "", "mowing", "please call")
	if err != nil {
		e.t.Fatalf("seed contact submission: %v", err)
	}
	return sub
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"supplydesk/backend"
	"supplydesk/config"
	"supplydesk/testhelpers"
)

// newBackendClient points a real client at a fake backend server.
func newBackendClient(serverURL string) *backend.Client {
	cfg := config.Config{
		BackendBaseURL:   serverURL,
		BackendTimeoutMs: 5000,
		BackendRetryMax:  1,
		BackendRateRPS:   1000,
	}
	return backend.NewClient(cfg, TokenFromContext)
}

func TestLoginSubmit_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"backend-token-1"}`))
	}))
	defer server.Close()

	client := newBackendClient(server.URL)
	handler := LoginSubmit(app, client)

	form := url.Values{"username": {"buyer"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected 302 redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}

	// A session record must exist carrying the backend token.
	sessions, err := app.FindRecordsByFilter("sessions", "username = {:u}", "", 0, 0, map[string]any{"u": "buyer"})
	if err != nil || len(sessions) != 1 {
		t.Fatalf("expected exactly one session record, got %d (err %v)", len(sessions), err)
	}
	if got := sessions[0].GetString("backend_token"); got != "backend-token-1" {
		t.Errorf("expected stored backend token, got %q", got)
	}

	// The cookie must reference that record.
	cookieSet := false
	for _, c := range rec.Header().Values("Set-Cookie") {
		if strings.Contains(c, SessionCookie+"="+sessions[0].Id) {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Error("expected session cookie referencing the new record")
	}
}

func TestLoginSubmit_BadCredentials(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := newBackendClient(server.URL)
	handler := LoginSubmit(app, client)

	form := url.Values{"username": {"buyer"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// No session is created; the form re-renders with the error.
	sessions, _ := app.FindRecordsByFilter("sessions", "", "", 0, 0)
	if len(sessions) != 0 {
		t.Errorf("expected no session records, got %d", len(sessions))
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "buyer")
}

func TestLoginSubmit_MissingFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := LoginSubmit(app, newBackendClient("http://unused.test"))

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "required")
}

func TestLoginPage_RedirectsWhenAlreadyLoggedIn(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")

	handler := LoginPage(app)
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sess.Id})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected redirect for logged-in user, got %d", rec.Code)
	}
}

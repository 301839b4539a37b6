package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/config"
	"supplydesk/services"
	"supplydesk/testhelpers"
)

const catalogJSON = `{
	"Acme Traders": [
		{"id": 7, "name": "Rice 5kg", "unit": "bag", "currency": "USD", "retail_price": "10.00", "supplier": "42", "supplier_name": "Acme Traders"},
		{"id": 8, "name": "Flour 1kg", "unit": "bag", "currency": "USD", "retail_price": "15.50", "supplier": "42", "supplier_name": "Acme Traders"}
	],
	"Blue Ocean": [
		{"id": 21, "name": "Salt 1kg", "unit": "pkt", "currency": "USD", "retail_price": "2.75", "supplier": "55", "supplier_name": "Blue Ocean"}
	]
}`

// fakeBackend serves the catalog and captures quotation creates.
type fakeBackend struct {
	server        *httptest.Server
	createStatus  int
	createBody    string
	quotations    []backend.QuotationPayload
	catalogStatus int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{
		createStatus:  http.StatusCreated,
		createBody:    `{"id":"q-1","created_at":"2026-08-30"}`,
		catalogStatus: http.StatusOK,
	}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/custom-quotation/" && r.Method == http.MethodGet:
			if fb.catalogStatus != http.StatusOK {
				w.WriteHeader(fb.catalogStatus)
				w.Write([]byte(`{"error":"unavailable"}`))
				return
			}
			w.Write([]byte(catalogJSON))
		case r.URL.Path == "/quotations/" && r.Method == http.MethodPost:
			var payload backend.QuotationPayload
			json.NewDecoder(r.Body).Decode(&payload)
			fb.quotations = append(fb.quotations, payload)
			w.WriteHeader(fb.createStatus)
			w.Write([]byte(fb.createBody))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"not found"}`))
		}
	}))
	t.Cleanup(fb.server.Close)
	return fb
}

func (fb *fakeBackend) client() *backend.Client {
	return newBackendClient(fb.server.URL)
}

func testAppConfig() config.Config {
	return config.Config{
		CompanyName:       "SupplyDesk Trading LLC",
		DefaultCurrency:   "USD",
		QuoteValidityDays: 30,
	}
}

// builderRequest builds a POST with the session injected, the way
// RequireSession would have.
func builderRequest(app *pocketbase.PocketBase, sess *core.Record, path string, form url.Values) (*core.RequestEvent, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ctx := context.WithValue(req.Context(), SessionKey, &Session{
		ID:       sess.Id,
		Username: sess.GetString("username"),
		Token:    sess.GetString("backend_token"),
	})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return newTestRequestEvent(app, req, rec), rec
}

func TestBuilderPage_RendersCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")
	fb := newFakeBackend(t)

	handler := BuilderPage(app, fb.client())
	req := httptest.NewRequest(http.MethodGet, "/quotations/create", nil)
	ctx := context.WithValue(req.Context(), SessionKey, &Session{ID: sess.Id, Token: "tok"})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Acme Traders", "Blue Ocean", "Create Quotation")
}

func TestBuilderFlow_SelectToggleAdd(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")
	fb := newFakeBackend(t)
	client := fb.client()

	// Select a supplier.
	e, _ := builderRequest(app, sess, "/quotations/create/supplier", url.Values{"supplier_name": {"Acme Traders"}})
	if err := BuilderSelectSupplier(app, client)(e); err != nil {
		t.Fatalf("select supplier: %v", err)
	}

	// Toggle two products.
	for _, id := range []string{"7", "8"} {
		e, _ := builderRequest(app, sess, "/quotations/create/toggle", url.Values{"product_id": {id}})
		if err := BuilderToggleProduct(app, client)(e); err != nil {
			t.Fatalf("toggle %s: %v", id, err)
		}
	}

	// Add the selection to the draft.
	e, rec := builderRequest(app, sess, "/quotations/create/add", url.Values{})
	if err := BuilderAddSelected(app, client)(e); err != nil {
		t.Fatalf("add selected: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Rice 5kg", "Flour 1kg", "25.50")

	// The draft survives as records.
	state := LoadBuilderState(app, sess.Id)
	if state.SupplierID != "42" {
		t.Errorf("expected persisted supplier 42, got %q", state.SupplierID)
	}
	if len(state.Items) != 2 {
		t.Errorf("expected 2 persisted items, got %d", len(state.Items))
	}
}

func TestBuilderFlow_SwitchSupplierClearsPersistedDraft(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")
	fb := newFakeBackend(t)
	client := fb.client()

	if err := SaveBuilderState(app, sess.Id, services.BuilderState{
		SupplierName: "Acme Traders",
		SupplierID:   "42",
		Items: []services.LineItem{
			{Key: "7-42", ProductID: "7", ProductName: "Rice 5kg", SupplierID: "42", SupplierName: "Acme Traders", Price: 10, Currency: "USD"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	e, _ := builderRequest(app, sess, "/quotations/create/supplier", url.Values{"supplier_name": {"Blue Ocean"}})
	if err := BuilderSelectSupplier(app, client)(e); err != nil {
		t.Fatalf("select supplier: %v", err)
	}

	state := LoadBuilderState(app, sess.Id)
	if len(state.Items) != 0 {
		t.Errorf("expected draft items cleared on supplier switch, got %d", len(state.Items))
	}
	if state.SupplierID != "55" {
		t.Errorf("expected new supplier 55, got %q", state.SupplierID)
	}
}

func TestBuilderSubmit_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")
	fb := newFakeBackend(t)

	if err := SaveBuilderState(app, sess.Id, services.BuilderState{
		SupplierName: "Acme Traders",
		SupplierID:   "42",
		Items: []services.LineItem{
			{Key: "7-42", ProductID: "7", ProductName: "Rice 5kg", SupplierID: "42", SupplierName: "Acme Traders", Price: 10, Currency: "USD", Unit: "bag"},
			{Key: "8-42", ProductID: "8", ProductName: "Flour 1kg", SupplierID: "42", SupplierName: "Acme Traders", Price: 15.5, Currency: "USD", Unit: "bag"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	e, rec := builderRequest(app, sess, "/quotations/create/submit", url.Values{"title": {"August order"}})
	e.Request.Header.Set("HX-Request", "true")
	if err := BuilderSubmit(app, fb.client(), testAppConfig())(e); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(fb.quotations) != 1 {
		t.Fatalf("expected one create call, got %d", len(fb.quotations))
	}
	if fb.quotations[0].TotalAmount != "25.50" {
		t.Errorf("expected total 25.50, got %q", fb.quotations[0].TotalAmount)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotations")

	// Draft cleared.
	state := LoadBuilderState(app, sess.Id)
	if len(state.Items) != 0 || state.SupplierID != "" {
		t.Errorf("expected cleared draft after submit, got %+v", state)
	}

	// Rendered PDF stored for the created quotation.
	docs, err := app.FindRecordsByFilter("rendered_documents", "quotation_id = {:qid}", "", 0, 0, map[string]any{"qid": "q-1"})
	if err != nil || len(docs) != 1 {
		t.Fatalf("expected one rendered document, got %d (err %v)", len(docs), err)
	}
	if docs[0].GetString("pdf_base64") == "" {
		t.Error("expected stored PDF content")
	}
}

func TestBuilderSubmit_BackendFailureKeepsDraft(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")
	fb := newFakeBackend(t)
	fb.createStatus = http.StatusBadRequest
	fb.createBody = `{"message":"Supplier is blocked"}`

	if err := SaveBuilderState(app, sess.Id, services.BuilderState{
		SupplierName: "Acme Traders",
		SupplierID:   "42",
		Items: []services.LineItem{
			{Key: "7-42", ProductID: "7", ProductName: "Rice 5kg", SupplierID: "42", SupplierName: "Acme Traders", Price: 10, Currency: "USD"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	e, rec := builderRequest(app, sess, "/quotations/create/submit", url.Values{})
	if err := BuilderSubmit(app, fb.client(), testAppConfig())(e); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// The backend message surfaces as an error toast.
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "Supplier is blocked") {
		t.Errorf("expected backend message in toast, got %q", trigger)
	}

	// Draft preserved for retry.
	state := LoadBuilderState(app, sess.Id)
	if len(state.Items) != 1 || state.SupplierID != "42" {
		t.Errorf("expected preserved draft after failure, got %+v", state)
	}
}

func TestBuilderSubmit_ExpiredTokenDropsSession(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")
	fb := newFakeBackend(t)
	fb.createStatus = http.StatusUnauthorized
	fb.createBody = `{"detail":"Token expired"}`

	if err := SaveBuilderState(app, sess.Id, services.BuilderState{
		SupplierName: "Acme Traders",
		SupplierID:   "42",
		Items: []services.LineItem{
			{Key: "7-42", ProductID: "7", ProductName: "Rice 5kg", SupplierID: "42", SupplierName: "Acme Traders", Price: 10, Currency: "USD"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	e, rec := builderRequest(app, sess, "/quotations/create/submit", url.Values{})
	e.Request.Header.Set("HX-Request", "true")
	if err := BuilderSubmit(app, fb.client(), testAppConfig())(e); err != nil {
		t.Fatalf("submit: %v", err)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/login")

	// The stale session record is gone.
	if _, err := app.FindRecordById("sessions", sess.Id); err == nil {
		t.Error("expected the session record to be deleted")
	}

	// The draft survives so the operator can pick it up after re-login.
	state := LoadBuilderState(app, sess.Id)
	if len(state.Items) != 1 {
		t.Errorf("expected preserved draft after auth failure, got %+v", state)
	}
}

func TestBuilderSubmit_EmptyDraftRejected(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	sess := testhelpers.CreateTestSession(t, app, "buyer", "tok")
	fb := newFakeBackend(t)

	e, rec := builderRequest(app, sess, "/quotations/create/submit", url.Values{})
	if err := BuilderSubmit(app, fb.client(), testAppConfig())(e); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(fb.quotations) != 0 {
		t.Errorf("expected no backend call for empty draft, got %d", len(fb.quotations))
	}
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "error") {
		t.Errorf("expected error toast, got %q", trigger)
	}
}

// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestSession creates a session record with the given username and
// backend token and returns it.
func CreateTestSession(t *testing.T, app *pocketbase.PocketBase, username, token string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("sessions")
	if err != nil {
		t.Fatalf("failed to find sessions collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("username", username)
	record.Set("backend_token", token)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test session: %v", err)
	}

	return record
}

// CreateTestDraft creates a quotation draft record bound to a session.
func CreateTestDraft(t *testing.T, app *pocketbase.PocketBase, sessionID, supplierName, supplierID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotation_drafts")
	if err != nil {
		t.Fatalf("failed to find quotation_drafts collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("session", sessionID)
	record.Set("supplier_name", supplierName)
	record.Set("supplier_id", supplierID)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test draft: %v", err)
	}

	return record
}

// CreateTestDraftItem creates one accumulated line on a draft.
func CreateTestDraftItem(t *testing.T, app *pocketbase.PocketBase, draftID, key, productID, productName, supplierID, supplierName string, price float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("draft_items")
	if err != nil {
		t.Fatalf("failed to find draft_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("draft", draftID)
	record.Set("key", key)
	record.Set("product_id", productID)
	record.Set("product_name", productName)
	record.Set("supplier_id", supplierID)
	record.Set("supplier_name", supplierName)
	record.Set("price", price)
	record.Set("currency", "USD")
	record.Set("unit", "pcs")
	record.Set("sort_order", sortOrder)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test draft item: %v", err)
	}

	return record
}

// CreateTestUploadLog creates an upload history record.
func CreateTestUploadLog(t *testing.T, app *pocketbase.PocketBase, filename, status string, totalRows, validRows int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("upload_logs")
	if err != nil {
		t.Fatalf("failed to find upload_logs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("filename", filename)
	record.Set("status", status)
	record.Set("total_rows", totalRows)
	record.Set("valid_rows", validRows)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test upload log: %v", err)
	}

	return record
}

// CreateTestRenderedDocument stores a rendered PDF for a quotation.
func CreateTestRenderedDocument(t *testing.T, app *pocketbase.PocketBase, quotationID, filename, pdfBase64 string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rendered_documents")
	if err != nil {
		t.Fatalf("failed to find rendered_documents collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_id", quotationID)
	record.Set("filename", filename)
	record.Set("pdf_base64", pdfBase64)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test rendered document: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

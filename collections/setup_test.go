package collections_test

import (
	"testing"

	"supplydesk/collections"
	"supplydesk/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"sessions",
	"quotation_drafts",
	"draft_items",
	"upload_logs",
	"rendered_documents",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_SessionsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("sessions")

	fields := []string{"backend_token", "username", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("sessions: missing field %q", f)
		}
	}
}

func TestSetup_QuotationDraftsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("quotation_drafts")

	fields := []string{"session", "supplier_name", "supplier_id", "selected_ids", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("quotation_drafts: missing field %q", f)
		}
	}
}

func TestSetup_DraftItemsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("draft_items")

	fields := []string{"draft", "key", "product_id", "product_name", "supplier_id", "supplier_name", "price", "currency", "unit", "sort_order"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("draft_items: missing field %q", f)
		}
	}

	// draft relation with cascade delete
	draftField := col.Fields.GetByName("draft")
	if rf, ok := draftField.(*core.RelationField); ok {
		if !rf.CascadeDelete {
			t.Error("draft_items.draft: expected CascadeDelete=true")
		}
		if rf.MaxSelect != 1 {
			t.Errorf("draft_items.draft: expected MaxSelect=1, got %d", rf.MaxSelect)
		}
	} else {
		t.Errorf("draft_items.draft is not a RelationField")
	}
}

func TestSetup_UploadLogsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("upload_logs")

	fields := []string{"filename", "total_rows", "valid_rows", "status", "detail", "created"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("upload_logs: missing field %q", f)
		}
	}

	// status select field
	statusField := col.Fields.GetByName("status")
	if sf, ok := statusField.(*core.SelectField); ok {
		expected := map[string]bool{"forwarded": true, "rejected": true, "failed": true}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected status value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing status value: %q", v)
		}
	} else {
		t.Errorf("upload_logs.status is not a SelectField")
	}
}

func TestSetup_RenderedDocumentsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("rendered_documents")

	fields := []string{"quotation_id", "filename", "pdf_base64", "created"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("rendered_documents: missing field %q", f)
		}
	}
}

func TestSetup_DraftItemsCascadeDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	sess := testhelpers.CreateTestSession(t, app, "buyer", "token-1")
	draft := testhelpers.CreateTestDraft(t, app, sess.Id, "Acme Traders", "42")
	item := testhelpers.CreateTestDraftItem(t, app, draft.Id, "7-42", "7", "Rice 5kg", "42", "Acme Traders", 12.50, 1)

	if err := app.Delete(draft); err != nil {
		t.Fatalf("failed to delete draft: %v", err)
	}

	if _, err := app.FindRecordById("draft_items", item.Id); err == nil {
		t.Error("draft_item should have been cascade-deleted with draft")
	}
}

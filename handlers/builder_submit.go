package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/config"
	"supplydesk/services"
)

// creatorFunc adapts a function to services.QuotationCreator.
type creatorFunc func(ctx context.Context, payload backend.QuotationPayload) (backend.CreatedQuotation, error)

func (f creatorFunc) CreateQuotation(ctx context.Context, payload backend.QuotationPayload) (backend.CreatedQuotation, error) {
	return f(ctx, payload)
}

// BuilderSubmit posts the accumulated draft to the backend. On success the
// quotation PDF is rendered and stored locally, the draft is cleared and the
// operator lands on the quotations list. On failure the draft is preserved
// and the builder re-renders so the submit can be retried.
func BuilderSubmit(app *pocketbase.PocketBase, client *backend.Client, cfg config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		b, sess, err := restoreBuilder(app, client, e)
		if err != nil {
			return backendError(app, e, err)
		}

		// Capture the create error so an expired token hits the same
		// session-drop path as every other backend call.
		var createErr error
		deps := services.SubmitDeps{
			Creator: creatorFunc(func(ctx context.Context, payload backend.QuotationPayload) (backend.CreatedQuotation, error) {
				created, err := client.CreateQuotation(ctx, payload)
				createErr = err
				return created, err
			}),
			Notify: func(kind, message string) {
				SetToast(e, kind, message)
			},
			Render: func(doc services.QuoteDocument) error {
				return storeRenderedDocument(app, cfg, doc)
			},
		}

		created := b.Submit(e.Request.Context(), e.Request.FormValue("title"), deps)
		if !created {
			if backend.IsUnauthorized(createErr) {
				DropSession(app, e)
				return redirectToLogin(e)
			}
			// Keep the draft so the operator can fix and retry.
			return saveAndRenderBuilder(app, e, b, sess)
		}

		ClearBuilderState(app, sess.ID)
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/quotations")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotations")
	}
}

// storeRenderedDocument renders the quotation PDF and keeps it locally so the
// download survives backend hiccups.
func storeRenderedDocument(app *pocketbase.PocketBase, cfg config.Config, doc services.QuoteDocument) error {
	data := services.BuildQuoteExportFromDocument(cfg, doc, time.Now())
	content, err := services.GenerateQuotationPDF(data)
	if err != nil {
		log.Printf("builder_submit: failed to render PDF for quotation %s: %v", doc.ID, err)
		return err
	}

	col, err := app.FindCollectionByNameOrId("rendered_documents")
	if err != nil {
		return fmt.Errorf("rendered_documents collection missing: %w", err)
	}
	rec := core.NewRecord(col)
	rec.Set("quotation_id", doc.ID)
	rec.Set("filename", fmt.Sprintf("quotation_%s.pdf", doc.ID))
	rec.Set("pdf_base64", base64.StdEncoding.EncodeToString(content))
	if err := app.Save(rec); err != nil {
		log.Printf("builder_submit: failed to store rendered PDF for %s: %v", doc.ID, err)
		return err
	}
	return nil
}

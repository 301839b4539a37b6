package handlers

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuotationDocument streams the PDF that was rendered when the quotation was
// submitted. Falls back to 404 when no document was stored, in which case the
// on-demand export routes still work.
func QuotationDocument(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		recs, err := app.FindRecordsByFilter("rendered_documents", "quotation_id = {:qid}", "-created", 1, 0, map[string]any{"qid": id})
		if err != nil || len(recs) == 0 {
			return ErrorToast(e, http.StatusNotFound, "No stored document for this quotation. Use the export links instead.")
		}

		rec := recs[0]
		content, err := base64.StdEncoding.DecodeString(rec.GetString("pdf_base64"))
		if err != nil {
			log.Printf("quotation_document: stored document for %s is corrupt: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Stored document is unreadable. Use the export links instead.")
		}

		filename := rec.GetString("filename")
		if filename == "" {
			filename = fmt.Sprintf("quotation_%s.pdf", id)
		}
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(content)
		return err
	}
}

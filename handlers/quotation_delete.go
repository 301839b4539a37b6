package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
)

// QuotationDelete removes a quotation on the backend, drops any stored
// rendered document for it, and re-renders the list.
func QuotationDelete(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if err := client.DeleteQuotation(e.Request.Context(), id); err != nil {
			log.Printf("quotation_delete: backend rejected delete of %s: %v", id, err)
			return backendError(app, e, err)
		}

		docs, err := app.FindRecordsByFilter("rendered_documents", "quotation_id = {:qid}", "", 0, 0, map[string]any{"qid": id})
		if err == nil {
			for _, doc := range docs {
				if err := app.Delete(doc); err != nil {
					log.Printf("quotation_delete: failed to drop rendered document %s: %v", doc.Id, err)
				}
			}
		}

		SetToast(e, "success", "Quotation deleted.")
		return QuotationList(app, client)(e)
	}
}

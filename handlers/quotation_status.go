package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
)

// QuotationStatuses are the states a stored quotation can be moved between.
var QuotationStatuses = []string{"pending", "approved", "rejected"}

// QuotationStatus moves a quotation to a new status and re-renders the
// detail view.
func QuotationStatus(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		status := e.Request.FormValue("status")
		if !validQuotationStatus(status) {
			return ErrorToast(e, http.StatusBadRequest, "Pick a valid status.")
		}

		if err := client.UpdateQuotationStatus(e.Request.Context(), id, status); err != nil {
			return backendError(app, e, err)
		}

		SetToast(e, "success", "Quotation marked "+status+".")
		return QuotationView(app, client)(e)
	}
}

func validQuotationStatus(status string) bool {
	for _, s := range QuotationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
)

// SupplierDelete removes a supplier on the backend and re-renders the list.
func SupplierDelete(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if err := client.DeleteSupplier(e.Request.Context(), id); err != nil {
			log.Printf("supplier_delete: backend rejected delete of %s: %v", id, err)
			return backendError(app, e, err)
		}

		SetToast(e, "success", "Supplier deleted.")
		return SupplierList(app, client)(e)
	}
}

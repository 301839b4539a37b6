package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
)

// ItemDelete removes a product on the backend and re-renders the list.
func ItemDelete(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if err := client.DeleteItem(e.Request.Context(), id); err != nil {
			log.Printf("item_delete: backend rejected delete of %s: %v", id, err)
			return backendError(app, e, err)
		}

		SetToast(e, "success", "Item deleted.")
		return ItemList(app, client)(e)
	}
}

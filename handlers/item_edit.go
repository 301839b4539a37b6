package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// ItemEditForm renders the item form pre-filled from the backend.
func ItemEditForm(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		item, err := client.GetItem(e.Request.Context(), id)
		if err != nil {
			return backendError(app, e, err)
		}

		data := templates.ItemFormData{
			ID:              item.ID.String(),
			Name:            item.Name,
			Unit:            item.Unit,
			Packing:         item.Packing,
			CountryOfOrigin: item.CountryOfOrigin,
			Currency:        item.Currency,
			RetailPrice:     item.RetailPrice,
			WholesalePrice:  item.WholesalePrice,
			Supplier:        item.Supplier,
			Suppliers:       supplierOptions(e, app, client),
		}
		header := GetHeaderData(e.Request)
		return render(e,
			templates.ItemFormPage(data, header),
			templates.ItemFormContent(data),
		)
	}
}

// ItemUpdate validates the posted form and updates the product on the
// backend.
func ItemUpdate(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		data, input, ok := readItemForm(e)
		data.ID = id
		if !ok {
			data.Suppliers = supplierOptions(e, app, client)
			header := GetHeaderData(e.Request)
			return render(e,
				templates.ItemFormPage(data, header),
				templates.ItemFormContent(data),
			)
		}

		if _, err := client.UpdateItem(e.Request.Context(), id, input); err != nil {
			log.Printf("item_edit: backend rejected update of %s: %v", id, err)
			return backendError(app, e, err)
		}

		SetToast(e, "success", "Item updated.")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/items")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/items")
	}
}

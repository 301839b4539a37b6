package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// SupplierEditForm renders the supplier form pre-filled from the backend.
func SupplierEditForm(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		supplier, err := client.GetSupplier(e.Request.Context(), id)
		if err != nil {
			return backendError(app, e, err)
		}

		data := templates.SupplierFormData{
			ID:          supplier.ID,
			Name:        supplier.Name,
			ContactName: supplier.ContactName,
			Email:       supplier.Email,
			Mobile:      supplier.Mobile,
			Country:     supplier.Country,
			Address:     supplier.Address,
		}
		header := GetHeaderData(e.Request)
		return render(e,
			templates.SupplierFormPage(data, header),
			templates.SupplierFormContent(data),
		)
	}
}

// SupplierUpdate validates the posted form and updates the supplier on the
// backend.
func SupplierUpdate(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		data, input, ok := readSupplierForm(e)
		data.ID = id
		if !ok {
			header := GetHeaderData(e.Request)
			return render(e,
				templates.SupplierFormPage(data, header),
				templates.SupplierFormContent(data),
			)
		}

		if _, err := client.UpdateSupplier(e.Request.Context(), id, input); err != nil {
			log.Printf("supplier_edit: backend rejected update of %s: %v", id, err)
			return backendError(app, e, err)
		}

		SetToast(e, "success", "Supplier updated.")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/suppliers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/suppliers")
	}
}

package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// SupplierCreateForm renders the empty supplier form.
func SupplierCreateForm(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SupplierFormData{}
		header := GetHeaderData(e.Request)
		return render(e,
			templates.SupplierFormPage(data, header),
			templates.SupplierFormContent(data),
		)
	}
}

// SupplierCreate validates the posted form and creates the supplier on the
// backend. Validation failures re-render the form with inline errors.
func SupplierCreate(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, input, ok := readSupplierForm(e)
		if !ok {
			header := GetHeaderData(e.Request)
			return render(e,
				templates.SupplierFormPage(data, header),
				templates.SupplierFormContent(data),
			)
		}

		if _, err := client.CreateSupplier(e.Request.Context(), input); err != nil {
			log.Printf("supplier_create: backend rejected supplier %q: %v", input.Name, err)
			return backendError(app, e, err)
		}

		SetToast(e, "success", "Supplier created.")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/suppliers")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/suppliers")
	}
}

// readSupplierForm parses and validates the supplier form. ok is false when
// validation failed and data carries the inline errors.
func readSupplierForm(e *core.RequestEvent) (templates.SupplierFormData, backend.SupplierInput, bool) {
	data := templates.SupplierFormData{
		Name:        e.Request.FormValue("name"),
		ContactName: e.Request.FormValue("contact_name"),
		Email:       e.Request.FormValue("email"),
		Mobile:      e.Request.FormValue("mobile"),
		Country:     e.Request.FormValue("country"),
		Address:     e.Request.FormValue("address"),
		Errors:      map[string]string{},
	}

	if data.Name == "" {
		data.Errors["name"] = "Name is required"
	}

	if len(data.Errors) > 0 {
		return data, backend.SupplierInput{}, false
	}
	return data, backend.SupplierInput{
		Name:        data.Name,
		ContactName: data.ContactName,
		Email:       data.Email,
		Mobile:      data.Mobile,
		Country:     data.Country,
		Address:     data.Address,
	}, true
}

package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// ItemCreateForm renders the empty item form with the supplier dropdown.
func ItemCreateForm(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.ItemFormData{
			Suppliers: supplierOptions(e, app, client),
		}
		header := GetHeaderData(e.Request)
		return render(e,
			templates.ItemFormPage(data, header),
			templates.ItemFormContent(data),
		)
	}
}

// ItemCreate validates the posted form and creates the product on the
// backend.
func ItemCreate(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, input, ok := readItemForm(e)
		if !ok {
			data.Suppliers = supplierOptions(e, app, client)
			header := GetHeaderData(e.Request)
			return render(e,
				templates.ItemFormPage(data, header),
				templates.ItemFormContent(data),
			)
		}

		if _, err := client.CreateItem(e.Request.Context(), input); err != nil {
			log.Printf("item_create: backend rejected item %q: %v", input.Name, err)
			return backendError(app, e, err)
		}

		SetToast(e, "success", "Item created.")
		if e.Request.Header.Get("HX-Request") == "true" {
			e.Response.Header().Set("HX-Redirect", "/items")
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/items")
	}
}

// readItemForm parses and validates the item form.
func readItemForm(e *core.RequestEvent) (templates.ItemFormData, backend.ItemInput, bool) {
	data := templates.ItemFormData{
		Name:            e.Request.FormValue("name"),
		Unit:            e.Request.FormValue("unit"),
		Packing:         e.Request.FormValue("packing"),
		CountryOfOrigin: e.Request.FormValue("country_of_origin"),
		Currency:        e.Request.FormValue("currency"),
		RetailPrice:     e.Request.FormValue("retail_price"),
		WholesalePrice:  e.Request.FormValue("wholesale_price"),
		Supplier:        e.Request.FormValue("supplier"),
		Errors:          map[string]string{},
	}

	if data.Name == "" {
		data.Errors["name"] = "Name is required"
	}
	if data.Supplier == "" {
		data.Errors["supplier"] = "Supplier is required"
	}
	if data.RetailPrice != "" {
		if _, err := strconv.ParseFloat(data.RetailPrice, 64); err != nil {
			data.Errors["retail_price"] = "Retail price must be a number"
		}
	}
	if data.WholesalePrice != "" {
		if _, err := strconv.ParseFloat(data.WholesalePrice, 64); err != nil {
			data.Errors["wholesale_price"] = "Wholesale price must be a number"
		}
	}

	if len(data.Errors) > 0 {
		return data, backend.ItemInput{}, false
	}
	return data, backend.ItemInput{
		Name:            data.Name,
		Unit:            data.Unit,
		Packing:         data.Packing,
		CountryOfOrigin: data.CountryOfOrigin,
		Currency:        data.Currency,
		RetailPrice:     data.RetailPrice,
		WholesalePrice:  data.WholesalePrice,
		Supplier:        data.Supplier,
	}, true
}

package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// ItemList renders one page of the items table with search and supplier
// filter.
func ItemList(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		page, search, pagination := listQuery(e, "/items")
		supplierFilter := e.Request.URL.Query().Get("supplier")

		result, err := client.ListItems(e.Request.Context(), page, defaultPageSize, backend.ItemFilter{
			Search:     search,
			SupplierID: supplierFilter,
		})
		if err != nil {
			return backendError(app, e, err)
		}

		data := templates.ItemListData{SupplierFilter: supplierFilter}
		for _, item := range result.Results {
			data.Items = append(data.Items, templates.ItemRow{
				ID:           item.ID.String(),
				Name:         item.Name,
				Unit:         item.Unit,
				Packing:      item.Packing,
				Currency:     item.Currency,
				RetailPrice:  item.RetailPrice,
				SupplierName: item.SupplierName,
			})
		}
		pagination.Total = result.Total
		data.Pagination = pagination
		data.Suppliers = supplierOptions(e, app, client)

		header := GetHeaderData(e.Request)
		return render(e,
			templates.ItemListPage(data, header),
			templates.ItemListContent(data),
		)
	}
}

// supplierOptions loads the supplier dropdown. Failures degrade to an empty
// dropdown; the screen still works without the filter.
func supplierOptions(e *core.RequestEvent, app *pocketbase.PocketBase, client *backend.Client) []templates.SupplierOption {
	result, err := client.ListSuppliers(e.Request.Context(), 1, 1000, "")
	if err != nil {
		log.Printf("item_list: failed to load supplier options: %v", err)
		return nil
	}
	options := make([]templates.SupplierOption, 0, len(result.Results))
	for _, s := range result.Results {
		options = append(options, templates.SupplierOption{ID: s.ID, Name: s.Name})
	}
	return options
}

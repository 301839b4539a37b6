package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// SupplierList renders one page of the supplier table.
func SupplierList(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		page, search, pagination := listQuery(e, "/suppliers")

		result, err := client.ListSuppliers(e.Request.Context(), page, defaultPageSize, search)
		if err != nil {
			return backendError(app, e, err)
		}

		data := templates.SupplierListData{}
		for _, s := range result.Results {
			data.Suppliers = append(data.Suppliers, templates.SupplierRow{
				ID:          s.ID,
				Name:        s.Name,
				ContactName: s.ContactName,
				Email:       s.Email,
				Mobile:      s.Mobile,
				Country:     s.Country,
			})
		}
		pagination.Total = result.Total
		data.Pagination = pagination

		header := GetHeaderData(e.Request)
		return render(e,
			templates.SupplierListPage(data, header),
			templates.SupplierListContent(data),
		)
	}
}

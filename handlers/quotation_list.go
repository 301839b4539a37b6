package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// QuotationList renders one page of the quotations table.
func QuotationList(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		page, search, pagination := listQuery(e, "/quotations")

		result, err := client.ListQuotations(e.Request.Context(), page, defaultPageSize, search)
		if err != nil {
			return backendError(app, e, err)
		}

		data := templates.QuotationListData{}
		for _, q := range result.Results {
			data.Quotations = append(data.Quotations, templates.QuotationRow{
				ID:           q.ID,
				Title:        q.Title,
				SupplierName: q.SupplierName,
				Status:       q.Status,
				Currency:     q.Currency,
				TotalAmount:  q.TotalAmount,
				CreatedAt:    q.CreatedAt,
			})
		}
		pagination.Total = result.Total
		data.Pagination = pagination

		header := GetHeaderData(e.Request)
		return render(e,
			templates.QuotationListPage(data, header),
			templates.QuotationListContent(data),
		)
	}
}

package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// QuotationView renders one stored quotation with its line items.
func QuotationView(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		quotation, err := client.GetQuotation(e.Request.Context(), id)
		if err != nil {
			return backendError(app, e, err)
		}

		data := templates.QuotationViewData{
			ID:            quotation.ID,
			Title:         quotation.Title,
			SupplierName:  quotation.SupplierName,
			Status:        quotation.Status,
			StatusOptions: QuotationStatuses,
			Currency:      quotation.Currency,
			TotalAmount:   quotation.TotalAmount,
			CreatedAt:     quotation.CreatedAt,
		}
		for _, item := range quotation.Items {
			data.Items = append(data.Items, templates.QuotationItemRow{
				ProductName: item.ProductName,
				Unit:        item.Unit,
				Quantity:    item.Quantity.String(),
				UnitPrice:   item.UnitPrice,
				TotalPrice:  item.TotalPrice,
			})
		}

		if recs, err := app.FindRecordsByFilter("rendered_documents", "quotation_id = {:qid}", "-created", 1, 0, map[string]any{"qid": id}); err == nil && len(recs) > 0 {
			data.HasRenderedPDF = true
		}

		header := GetHeaderData(e.Request)
		return render(e,
			templates.QuotationViewPage(data, header),
			templates.QuotationViewContent(data),
		)
	}
}

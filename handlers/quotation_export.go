package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/config"
	"supplydesk/services"
)

// QuotationExport streams a quotation as PDF, Excel or CSV depending on the
// format path segment.
func QuotationExport(app *pocketbase.PocketBase, client *backend.Client, cfg config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		format := e.Request.PathValue("format")

		quotation, err := client.GetQuotation(e.Request.Context(), id)
		if err != nil {
			return backendError(app, e, err)
		}
		data := services.BuildQuoteExportData(cfg, quotation, time.Now())

		var (
			content  []byte
			mime     string
			filename string
		)
		switch format {
		case "pdf":
			content, err = services.GenerateQuotationPDF(data)
			mime = "application/pdf"
			filename = fmt.Sprintf("quotation_%s.pdf", id)
		case "excel":
			content, err = services.GenerateQuotationExcel(data)
			mime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
			filename = fmt.Sprintf("quotation_%s.xlsx", id)
		case "csv":
			content, err = services.GenerateQuotationCSV(data)
			mime = "text/csv"
			filename = fmt.Sprintf("quotation_%s.csv", id)
		default:
			return ErrorToast(e, http.StatusBadRequest, "Unknown export format.")
		}
		if err != nil {
			log.Printf("quotation_export: failed to generate %s for %s: %v", format, id, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not generate the document. Try another format.")
		}

		e.Response.Header().Set("Content-Type", mime)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		_, err = e.Response.Write(content)
		return err
	}
}

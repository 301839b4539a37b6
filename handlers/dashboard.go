package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// Dashboard renders the landing page counters. A stats failure degrades to
// zeroed cards with an inline error rather than blocking the landing page.
func Dashboard(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.DashboardData{}

		stats, err := client.DashboardStats(e.Request.Context())
		if err != nil {
			if backend.IsUnauthorized(err) {
				DropSession(app, e)
				return redirectToLogin(e)
			}
			log.Printf("dashboard: failed to load stats: %v", err)
			data.LoadError = backend.UserMessage(err)
		} else {
			data.Suppliers = stats.Suppliers
			data.Items = stats.Items
			data.Quotations = stats.Quotations
		}

		if uploads, err := app.FindAllRecords("upload_logs"); err == nil {
			data.Uploads = len(uploads)
		}

		header := GetHeaderData(e.Request)
		return render(e,
			templates.DashboardPage(data, header),
			templates.DashboardContent(data),
		)
	}
}

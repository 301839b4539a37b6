package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// DashboardContent renders the stat cards of the landing page.
func DashboardContent(data DashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<h1>Dashboard</h1>`)
		if data.LoadError != "" {
			p.f(`<div class="banner banner-error">%s</div>`, esc(data.LoadError))
		}
		p.s(`<div class="cards">`)
		cards := []struct {
			label string
			value int
			href  string
		}{
			{"Suppliers", data.Suppliers, "/suppliers"},
			{"Items", data.Items, "/items"},
			{"Quotations", data.Quotations, "/quotations"},
			{"Uploads", data.Uploads, "/uploads"},
		}
		for _, c := range cards {
			p.f(`<a class="card" href="%s"><span class="card-value">%d</span><span class="card-label">%s</span></a>`,
				c.href, c.value, esc(c.label))
		}
		p.s(`</div>`)
		return p.err
	})
}

// DashboardPage wraps the dashboard content in the full chrome.
func DashboardPage(data DashboardData, header HeaderData) templ.Component {
	return Page("Dashboard", header, DashboardContent(data))
}

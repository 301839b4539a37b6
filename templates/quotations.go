package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// QuotationListContent renders the quotations table with status and
// per-quotation export links.
func QuotationListContent(data QuotationListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<div class="page-head"><h1>Quotations</h1>`)
		p.s(`<a class="btn" href="/quotations/create">Create Quotation</a></div>`)
		renderSearchBox(p, "/quotations", data.Pagination.Search, "Search quotations...")

		if len(data.Quotations) == 0 {
			p.s(`<p class="empty">No quotations yet.</p>`)
			return p.err
		}

		p.s(`<table><thead><tr><th>Title</th><th>Supplier</th><th>Status</th><th>Total</th><th>Created</th><th></th></tr></thead><tbody>`)
		for _, q := range data.Quotations {
			p.s(`<tr>`)
			p.f(`<td><a href="/quotations/%s">%s</a></td>`, q.ID, esc(q.Title))
			p.f(`<td>%s</td>`, esc(q.SupplierName))
			p.f(`<td><span class="status status-%s">%s</span></td>`, attrEsc(q.Status), esc(q.Status))
			p.f(`<td>%s %s</td>`, esc(q.Currency), esc(q.TotalAmount))
			p.f(`<td>%s</td>`, esc(q.CreatedAt))
			p.f(`<td><a href="/quotations/%s/export/pdf">PDF</a> `, q.ID)
			p.f(`<a href="/quotations/%s/export/excel">Excel</a> `, q.ID)
			p.f(`<a href="/quotations/%s/export/csv">CSV</a> `, q.ID)
			p.f(`<button class="link danger" hx-delete="/quotations/%s" hx-confirm="Delete quotation %s?" hx-target="#content">Delete</button></td>`,
				q.ID, attrEsc(q.Title))
			p.s(`</tr>`)
		}
		p.s(`</tbody></table>`)
		renderPagination(p, data.Pagination)
		return p.err
	})
}

// QuotationListPage wraps the quotation list in the full chrome.
func QuotationListPage(data QuotationListData, header HeaderData) templ.Component {
	return Page("Quotations", header, QuotationListContent(data))
}

// QuotationViewContent renders one stored quotation with its line items and
// export actions.
func QuotationViewContent(data QuotationViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<div class="page-head">`)
		p.f(`<h1>%s</h1>`, esc(data.Title))
		p.f(`<span class="status status-%s">%s</span></div>`, attrEsc(data.Status), esc(data.Status))

		p.s(`<dl class="detail">`)
		p.f(`<dt>Supplier</dt><dd>%s</dd>`, esc(data.SupplierName))
		p.f(`<dt>Created</dt><dd>%s</dd>`, esc(data.CreatedAt))
		p.f(`<dt>Total</dt><dd>%s %s</dd>`, esc(data.Currency), esc(data.TotalAmount))
		p.s(`</dl>`)

		p.f(`<form class="inline" hx-post="/quotations/%s/status" hx-target="#content">`, data.ID)
		p.s(`<select name="status">`)
		for _, status := range data.StatusOptions {
			selected := ""
			if status == data.Status {
				selected = " selected"
			}
			p.f(`<option value="%s"%s>%s</option>`, attrEsc(status), selected, esc(status))
		}
		p.s(`</select> <button class="btn" type="submit">Update Status</button></form>`)

		p.s(`<div class="actions">`)
		if data.HasRenderedPDF {
			p.f(`<a class="btn" href="/quotations/%s/document">Download PDF</a> `, data.ID)
		}
		p.f(`<a href="/quotations/%s/export/pdf">Export PDF</a> `, data.ID)
		p.f(`<a href="/quotations/%s/export/excel">Export Excel</a> `, data.ID)
		p.f(`<a href="/quotations/%s/export/csv">Export CSV</a>`, data.ID)
		p.s(`</div>`)

		p.s(`<table><thead><tr><th>Product</th><th>Unit</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr></thead><tbody>`)
		for _, item := range data.Items {
			p.s(`<tr>`)
			p.f(`<td>%s</td>`, esc(item.ProductName))
			p.f(`<td>%s</td>`, esc(item.Unit))
			p.f(`<td>%s</td>`, esc(item.Quantity))
			p.f(`<td>%s</td>`, esc(item.UnitPrice))
			p.f(`<td>%s</td>`, esc(item.TotalPrice))
			p.s(`</tr>`)
		}
		p.s(`</tbody></table>`)
		p.s(`<p><a href="/quotations">Back to quotations</a></p>`)
		return p.err
	})
}

// QuotationViewPage wraps the quotation detail in the full chrome.
func QuotationViewPage(data QuotationViewData, header HeaderData) templ.Component {
	return Page(data.Title, header, QuotationViewContent(data))
}

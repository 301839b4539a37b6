package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// BuilderContent renders the quotation builder: supplier picker, catalog
// panel with checkboxes, and the accumulated draft with its running total.
// Every control posts back and swaps this content region so the draft stays
// server-side.
func BuilderContent(data BuilderData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<div class="page-head"><h1>Create Quotation</h1></div>`)

		if data.CatalogError != "" {
			ErrorBanner(data.CatalogError).Render(ctx, w)
		}

		p.s(`<div class="builder">`)

		p.s(`<section class="builder-catalog">`)
		p.s(`<form hx-post="/quotations/create/supplier" hx-target="#content">`)
		p.s(`<label>Supplier `)
		p.s(`<select name="supplier_name" hx-post="/quotations/create/supplier" hx-target="#content"><option value="">Select supplier</option>`)
		for _, name := range data.SupplierNames {
			selected := ""
			if name == data.SelectedSupplier {
				selected = " selected"
			}
			p.f(`<option value="%s"%s>%s</option>`, attrEsc(name), selected, esc(name))
		}
		p.s(`</select></label></form>`)

		if data.SelectedSupplier == "" {
			p.s(`<p class="empty">Pick a supplier to browse its catalog.</p>`)
		} else if len(data.Offerings) == 0 {
			p.s(`<p class="empty">This supplier has no products.</p>`)
		} else {
			p.s(`<table><thead><tr><th></th><th>Product</th><th>Unit</th><th>Price</th></tr></thead><tbody>`)
			for _, o := range data.Offerings {
				checked := ""
				if o.Selected {
					checked = " checked"
				}
				p.s(`<tr>`)
				p.f(`<td><input type="checkbox" name="product_id" value="%s"%s hx-post="/quotations/create/toggle" hx-vals='{"product_id":"%s"}' hx-target="#content"></td>`,
					attrEsc(o.ID), checked, attrEsc(o.ID))
				p.f(`<td>%s</td>`, esc(o.Name))
				p.f(`<td>%s</td>`, esc(o.Unit))
				p.f(`<td>%s %s</td>`, esc(o.Currency), esc(o.RetailPrice))
				p.s(`</tr>`)
			}
			p.s(`</tbody></table>`)
			p.f(`<button class="btn" hx-post="/quotations/create/add" hx-target="#content">Add Selected (%d)</button>`, data.SelectedCount)
		}
		p.s(`</section>`)

		p.s(`<section class="builder-draft"><h2>Draft</h2>`)
		if len(data.Items) == 0 {
			p.s(`<p class="empty">No items added yet.</p>`)
		} else {
			p.s(`<table><thead><tr><th>Product</th><th>Supplier</th><th>Unit</th><th>Price</th><th></th></tr></thead><tbody>`)
			for _, item := range data.Items {
				p.s(`<tr>`)
				p.f(`<td>%s</td>`, esc(item.ProductName))
				p.f(`<td>%s</td>`, esc(item.SupplierName))
				p.f(`<td>%s</td>`, esc(item.Unit))
				p.f(`<td>%s %s</td>`, esc(item.Currency), esc(item.Price))
				p.f(`<td><button class="link danger" hx-post="/quotations/create/remove" hx-vals='{"key":"%s"}' hx-target="#content">Remove</button></td>`,
					attrEsc(item.Key))
				p.s(`</tr>`)
			}
			p.s(`</tbody></table>`)
			p.f(`<p class="total">Total: %s %s</p>`, esc(data.Currency), esc(data.TotalAmount))

			p.s(`<form hx-post="/quotations/create/submit" hx-target="#content" class="form">`)
			p.s(`<label>Title <input type="text" name="title" placeholder="Quotation title"></label>`)
			p.s(`<button type="submit" class="btn">Submit Quotation</button>`)
			p.s(`</form>`)
			p.s(`<button class="link" hx-post="/quotations/create/reset" hx-confirm="Discard the current draft?" hx-target="#content">Discard draft</button>`)
		}
		p.s(`</section>`)

		p.s(`</div>`)
		return p.err
	})
}

// BuilderPage wraps the builder in the full chrome.
func BuilderPage(data BuilderData, header HeaderData) templ.Component {
	return Page("Create Quotation", header, BuilderContent(data))
}

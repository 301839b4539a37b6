package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ItemListContent renders the items table with search, supplier filter and
// pager.
func ItemListContent(data ItemListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<div class="page-head"><h1>Items</h1>`)
		p.s(`<a class="btn" href="/items/create">Add Item</a></div>`)

		p.s(`<form method="get" action="/items" class="search">`)
		p.f(`<input type="search" name="q" value="%s" placeholder="Search items...">`, attrEsc(data.Pagination.Search))
		p.s(`<select name="supplier"><option value="">All suppliers</option>`)
		for _, s := range data.Suppliers {
			selected := ""
			if s.ID == data.SupplierFilter {
				selected = " selected"
			}
			p.f(`<option value="%s"%s>%s</option>`, attrEsc(s.ID), selected, esc(s.Name))
		}
		p.s(`</select><button type="submit">Filter</button></form>`)

		if len(data.Items) == 0 {
			p.s(`<p class="empty">No items found.</p>`)
			return p.err
		}

		p.s(`<table><thead><tr><th>Name</th><th>Unit</th><th>Packing</th><th>Retail Price</th><th>Supplier</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			p.s(`<tr>`)
			p.f(`<td>%s</td>`, esc(item.Name))
			p.f(`<td>%s</td>`, esc(item.Unit))
			p.f(`<td>%s</td>`, esc(item.Packing))
			p.f(`<td>%s %s</td>`, esc(item.Currency), esc(item.RetailPrice))
			p.f(`<td>%s</td>`, esc(item.SupplierName))
			p.f(`<td><a href="/items/%s/edit">Edit</a> `, item.ID)
			p.f(`<button class="link danger" hx-delete="/items/%s" hx-confirm="Delete item %s?" hx-target="#content">Delete</button></td>`,
				item.ID, attrEsc(item.Name))
			p.s(`</tr>`)
		}
		p.s(`</tbody></table>`)
		renderPagination(p, data.Pagination)
		return p.err
	})
}

// ItemListPage wraps the items list in the full chrome.
func ItemListPage(data ItemListData, header HeaderData) templ.Component {
	return Page("Items", header, ItemListContent(data))
}

// ItemFormContent renders the create/edit item form. An empty ID means
// create.
func ItemFormContent(data ItemFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		action := "/items"
		heading := "Add Item"
		if data.ID != "" {
			action = "/items/" + data.ID + "/save"
			heading = "Edit Item"
		}
		p.f(`<h1>%s</h1>`, heading)
		p.f(`<form method="post" action="%s" class="form">`, action)

		p.s(`<label>Name`)
		p.f(`<input type="text" name="name" value="%s" required>`, attrEsc(data.Name))
		fieldError(p, data.Errors, "name")
		p.s(`</label>`)

		p.s(`<label>Supplier`)
		p.s(`<select name="supplier"><option value="">Select supplier</option>`)
		for _, s := range data.Suppliers {
			selected := ""
			if s.ID == data.Supplier {
				selected = " selected"
			}
			p.f(`<option value="%s"%s>%s</option>`, attrEsc(s.ID), selected, esc(s.Name))
		}
		p.s(`</select>`)
		fieldError(p, data.Errors, "supplier")
		p.s(`</label>`)

		p.s(`<label>Unit`)
		p.f(`<input type="text" name="unit" value="%s">`, attrEsc(data.Unit))
		p.s(`</label>`)

		p.s(`<label>Packing`)
		p.f(`<input type="text" name="packing" value="%s">`, attrEsc(data.Packing))
		p.s(`</label>`)

		p.s(`<label>Country of Origin`)
		p.f(`<input type="text" name="country_of_origin" value="%s">`, attrEsc(data.CountryOfOrigin))
		p.s(`</label>`)

		p.s(`<label>Currency`)
		p.f(`<input type="text" name="currency" value="%s" placeholder="USD">`, attrEsc(data.Currency))
		p.s(`</label>`)

		p.s(`<label>Retail Price`)
		p.f(`<input type="text" name="retail_price" value="%s">`, attrEsc(data.RetailPrice))
		fieldError(p, data.Errors, "retail_price")
		p.s(`</label>`)

		p.s(`<label>Wholesale Price`)
		p.f(`<input type="text" name="wholesale_price" value="%s">`, attrEsc(data.WholesalePrice))
		fieldError(p, data.Errors, "wholesale_price")
		p.s(`</label>`)

		p.s(`<div class="form-actions"><button type="submit" class="btn">Save</button> <a href="/items">Cancel</a></div>`)
		p.s(`</form>`)
		return p.err
	})
}

// ItemFormPage wraps the item form in the full chrome.
func ItemFormPage(data ItemFormData, header HeaderData) templ.Component {
	title := "Add Item"
	if data.ID != "" {
		title = "Edit Item"
	}
	return Page(title, header, ItemFormContent(data))
}

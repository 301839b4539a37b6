package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SupplierListContent renders the supplier table with search and pager.
func SupplierListContent(data SupplierListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<div class="page-head"><h1>Suppliers</h1>`)
		p.s(`<a class="btn" href="/suppliers/create">Add Supplier</a></div>`)
		renderSearchBox(p, "/suppliers", data.Pagination.Search, "Search suppliers...")

		if len(data.Suppliers) == 0 {
			p.s(`<p class="empty">No suppliers found.</p>`)
			return p.err
		}

		p.s(`<table><thead><tr><th>Name</th><th>Contact</th><th>Email</th><th>Mobile</th><th>Country</th><th></th></tr></thead><tbody>`)
		for _, s := range data.Suppliers {
			p.s(`<tr>`)
			p.f(`<td>%s</td>`, esc(s.Name))
			p.f(`<td>%s</td>`, esc(s.ContactName))
			p.f(`<td>%s</td>`, esc(s.Email))
			p.f(`<td>%s</td>`, esc(s.Mobile))
			p.f(`<td>%s</td>`, esc(s.Country))
			p.f(`<td><a href="/suppliers/%s/edit">Edit</a> `, s.ID)
			p.f(`<button class="link danger" hx-delete="/suppliers/%s" hx-confirm="Delete supplier %s?" hx-target="#content">Delete</button></td>`,
				s.ID, attrEsc(s.Name))
			p.s(`</tr>`)
		}
		p.s(`</tbody></table>`)
		renderPagination(p, data.Pagination)
		return p.err
	})
}

// SupplierListPage wraps the supplier list in the full chrome.
func SupplierListPage(data SupplierListData, header HeaderData) templ.Component {
	return Page("Suppliers", header, SupplierListContent(data))
}

// SupplierFormContent renders the create/edit supplier form. An empty ID
// means create.
func SupplierFormContent(data SupplierFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		action := "/suppliers"
		heading := "Add Supplier"
		if data.ID != "" {
			action = "/suppliers/" + data.ID + "/save"
			heading = "Edit Supplier"
		}
		p.f(`<h1>%s</h1>`, heading)
		p.f(`<form method="post" action="%s" class="form">`, action)

		p.s(`<label>Name`)
		p.f(`<input type="text" name="name" value="%s" required>`, attrEsc(data.Name))
		fieldError(p, data.Errors, "name")
		p.s(`</label>`)

		p.s(`<label>Contact Name`)
		p.f(`<input type="text" name="contact_name" value="%s">`, attrEsc(data.ContactName))
		p.s(`</label>`)

		p.s(`<label>Email`)
		p.f(`<input type="email" name="email" value="%s">`, attrEsc(data.Email))
		fieldError(p, data.Errors, "email")
		p.s(`</label>`)

		p.s(`<label>Mobile`)
		p.f(`<input type="text" name="mobile" value="%s">`, attrEsc(data.Mobile))
		p.s(`</label>`)

		p.s(`<label>Country`)
		p.f(`<input type="text" name="country" value="%s">`, attrEsc(data.Country))
		p.s(`</label>`)

		p.s(`<label>Address`)
		p.f(`<textarea name="address" rows="3">%s</textarea>`, esc(data.Address))
		p.s(`</label>`)

		p.s(`<div class="form-actions"><button type="submit" class="btn">Save</button> <a href="/suppliers">Cancel</a></div>`)
		p.s(`</form>`)
		return p.err
	})
}

// SupplierFormPage wraps the supplier form in the full chrome.
func SupplierFormPage(data SupplierFormData, header HeaderData) templ.Component {
	title := "Add Supplier"
	if data.ID != "" {
		title = "Edit Supplier"
	}
	return Page(title, header, SupplierFormContent(data))
}

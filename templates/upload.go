package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// UploadContent renders the supplier list upload form, the pre-validation
// errors of the last attempt, and the upload history.
func UploadContent(data UploadData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<div class="page-head"><h1>Supplier List Upload</h1>`)
		p.s(`<a href="/uploads/template">Download template</a></div>`)

		p.s(`<form method="post" action="/uploads" enctype="multipart/form-data" class="form">`)
		p.s(`<label>File (.csv or .xlsx) <input type="file" name="supplier_list" accept=".csv,.xlsx" required></label>`)
		p.s(`<button type="submit" class="btn">Upload</button>`)
		p.s(`</form>`)

		if len(data.RowErrors) > 0 {
			p.s(`<h2>Validation errors</h2>`)
			p.s(`<table class="errors"><thead><tr><th>Row</th><th>Field</th><th>Problem</th></tr></thead><tbody>`)
			for _, e := range data.RowErrors {
				p.s(`<tr>`)
				p.f(`<td>%d</td>`, e.Row)
				p.f(`<td>%s</td>`, esc(e.Field))
				p.f(`<td>%s</td>`, esc(e.Message))
				p.s(`</tr>`)
			}
			p.s(`</tbody></table>`)
		}

		p.s(`<h2>History</h2>`)
		if len(data.Logs) == 0 {
			p.s(`<p class="empty">No uploads yet.</p>`)
			return p.err
		}
		p.s(`<table><thead><tr><th>File</th><th>Rows</th><th>Valid</th><th>Status</th><th>Detail</th><th>When</th></tr></thead><tbody>`)
		for _, log := range data.Logs {
			p.s(`<tr>`)
			p.f(`<td>%s</td>`, esc(log.Filename))
			p.f(`<td>%d</td>`, log.TotalRows)
			p.f(`<td>%d</td>`, log.ValidRows)
			p.f(`<td><span class="status status-%s">%s</span></td>`, attrEsc(log.Status), esc(log.Status))
			p.f(`<td>%s</td>`, esc(log.Detail))
			p.f(`<td>%s</td>`, esc(log.Created))
			p.s(`</tr>`)
		}
		p.s(`</tbody></table>`)
		return p.err
	})
}

// UploadPage wraps the upload screen in the full chrome.
func UploadPage(data UploadData, header HeaderData) templ.Component {
	return Page("Supplier List Upload", header, UploadContent(data))
}

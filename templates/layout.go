package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type navLink struct {
	key   string
	href  string
	label string
}

var navLinks = []navLink{
	{"dashboard", "/dashboard", "Dashboard"},
	{"suppliers", "/suppliers", "Suppliers"},
	{"items", "/items", "Items"},
	{"quotations", "/quotations", "Quotations"},
	{"builder", "/quotations/create", "Create Quotation"},
	{"upload", "/uploads", "Upload Supplier List"},
}

// Page wraps content in the full dashboard chrome: head, header bar,
// sidebar, toast plumbing.
func Page(title string, header HeaderData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.s(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.f(`<title>%s · Supply Desk</title>`, esc(title))
		p.s(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		p.s(`<link rel="stylesheet" href="/static/css/app.css">`)
		p.s(`</head><body hx-boost="false">`)

		renderHeader(p, header)
		p.s(`<div class="shell">`)
		renderSidebar(p, header.ActivePage)
		p.s(`<main id="content" class="content">`)
		if p.err != nil {
			return p.err
		}
		if err := content.Render(ctx, w); err != nil {
			return err
		}
		p.s(`</main></div>`)
		renderToastScript(p)
		p.s(`</body></html>`)
		return p.err
	})
}

func renderHeader(p *printer, header HeaderData) {
	p.s(`<header class="topbar"><span class="brand">Supply Desk</span>`)
	p.s(`<span class="spacer"></span>`)
	if header.Username != "" {
		p.f(`<span class="user">%s</span>`, esc(header.Username))
		p.s(`<form method="post" action="/logout" class="inline"><button type="submit" class="link">Logout</button></form>`)
	}
	p.s(`</header>`)
}

func renderSidebar(p *printer, active string) {
	p.s(`<nav class="sidebar"><ul>`)
	for _, link := range navLinks {
		cls := ""
		if link.key == active {
			cls = ` class="active"`
		}
		p.f(`<li%s><a href="%s">%s</a></li>`, cls, link.href, esc(link.label))
	}
	p.s(`</ul></nav>`)
}

// renderToastScript wires the showToast HX-Trigger event and the
// supplydesk_toast flash cookie into a transient toast element.
func renderToastScript(p *printer) {
	p.s(`<div id="toast" class="toast" hidden></div>`)
	p.s(`<script>
(function () {
  var el = document.getElementById("toast");
  function show(msg, type) {
    el.textContent = msg;
    el.className = "toast toast-" + (type || "info");
    el.hidden = false;
    setTimeout(function () { el.hidden = true; }, 4000);
  }
  document.body.addEventListener("showToast", function (evt) {
    show(evt.detail.message, evt.detail.type);
  });
  var m = document.cookie.match(/(?:^|; )supplydesk_toast=([^;]*)/);
  if (m) {
    try {
      var data = JSON.parse(decodeURIComponent(m[1]));
      show(data.message, data.type);
    } catch (e) { /* stale cookie */ }
    document.cookie = "supplydesk_toast=; path=/; max-age=0";
  }
})();
</script>`)
}

// ErrorBanner renders an inline, non-toast error block.
func ErrorBanner(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.f(`<div class="banner banner-error">%s</div>`, esc(message))
		return p.err
	})
}

// fieldError emits the validation message for a form field, if any.
func fieldError(p *printer, errors map[string]string, field string) {
	if msg, ok := errors[field]; ok && msg != "" {
		p.f(`<span class="field-error">%s</span>`, esc(msg))
	}
}

// renderPagination emits the pager controls shared by all list screens.
func renderPagination(p *printer, pg Pagination) {
	pages := pg.TotalPages()
	if pages <= 1 {
		return
	}
	p.f(`<div class="pager">Page %d of %d (%d total)`, pg.Page, pages, pg.Total)
	if pg.Page > 1 {
		p.f(` <a href="%s?page=%d&q=%s">Previous</a>`, pg.BaseURL, pg.Page-1, attrEsc(pg.Search))
	}
	if pg.Page < pages {
		p.f(` <a href="%s?page=%d&q=%s">Next</a>`, pg.BaseURL, pg.Page+1, attrEsc(pg.Search))
	}
	p.s(`</div>`)
}

// renderSearchBox emits the list search form shared by all list screens.
func renderSearchBox(p *printer, action, query, placeholder string) {
	p.f(`<form method="get" action="%s" class="search">`, action)
	p.f(`<input type="search" name="q" value="%s" placeholder="%s">`, attrEsc(query), attrEsc(placeholder))
	p.s(`<button type="submit">Search</button></form>`)
}

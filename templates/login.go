package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoginPage is the only screen rendered outside the dashboard chrome.
func LoginPage(data LoginData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := newPrinter(w)
		p.s(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.s(`<title>Login · Supply Desk</title>`)
		p.s(`<link rel="stylesheet" href="/static/css/app.css">`)
		p.s(`</head><body class="login-body">`)
		p.s(`<div class="login-card"><h1>Supply Desk</h1>`)
		if data.Error != "" {
			p.f(`<div class="banner banner-error">%s</div>`, esc(data.Error))
		}
		p.s(`<form method="post" action="/login">`)
		p.s(`<label>Username`)
		p.f(`<input type="text" name="username" value="%s" autofocus required>`, attrEsc(data.Username))
		p.s(`</label><label>Password`)
		p.s(`<input type="password" name="password" required>`)
		p.s(`</label><button type="submit">Sign in</button>`)
		p.s(`</form></div></body></html>`)
		return p.err
	})
}

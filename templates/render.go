// Package templates holds the templ components for every dashboard screen.
// Components are written as code components (templ.ComponentFunc) so markup
// and view data stay in plain Go.
package templates

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// printer accumulates HTML onto an io.Writer, keeping the first error.
type printer struct {
	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// f writes a formatted fragment. Arguments are NOT escaped; use esc for
// anything user-supplied.
func (p *printer) f(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// s writes a literal fragment.
func (p *printer) s(raw string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, raw)
}

// esc HTML-escapes a user-supplied string.
func esc(s string) string {
	return templ.EscapeString(s)
}

// attrEsc escapes a string for use inside a double-quoted attribute.
func attrEsc(s string) string {
	return templ.EscapeString(s)
}

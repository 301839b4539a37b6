package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// defaultPageSize matches the backend's list page size.
const defaultPageSize = 10

// render writes the partial for HTMX requests and the full page otherwise.
func render(e *core.RequestEvent, full, partial templ.Component) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	if e.Request.Header.Get("HX-Request") == "true" {
		return partial.Render(e.Request.Context(), e.Response)
	}
	return full.Render(e.Request.Context(), e.Response)
}

// listQuery reads page and search params off a list request.
func listQuery(e *core.RequestEvent, baseURL string) (page int, search string, pagination templates.Pagination) {
	page, _ = strconv.Atoi(e.Request.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	search = e.Request.URL.Query().Get("q")
	pagination = templates.Pagination{
		Page:    page,
		Limit:   defaultPageSize,
		BaseURL: baseURL,
		Search:  search,
	}
	return page, search, pagination
}

// backendError translates a backend client failure into a user-facing
// response. An expired token drops the local session and sends the operator
// back to the login screen; everything else becomes an error toast.
func backendError(app *pocketbase.PocketBase, e *core.RequestEvent, err error) error {
	if backend.IsUnauthorized(err) {
		DropSession(app, e)
		return redirectToLogin(e)
	}
	return ErrorToast(e, http.StatusBadGateway, backend.UserMessage(err))
}

package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/templates"
)

type contextKey string

const SessionKey contextKey = "session"
const HeaderDataKey contextKey = "headerData"

// SessionCookie is the name of the cookie holding the session record id.
const SessionCookie = "supplydesk_session"

// Session is the resolved login state for the current request.
type Session struct {
	ID       string
	Username string
	Token    string
}

// GetSession extracts the resolved session from the request context.
func GetSession(r *http.Request) *Session {
	if val, ok := r.Context().Value(SessionKey).(*Session); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// TokenFromContext yields the backend bearer token stored by
// RequireSession. It satisfies backend.TokenFunc.
func TokenFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(SessionKey).(*Session); ok {
		return val.Token
	}
	return ""
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// redirectToLogin sends the browser to the login screen. HTMX requests get
// an HX-Redirect so the full page navigates instead of swapping a fragment.
func redirectToLogin(e *core.RequestEvent) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", "/login")
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, "/login")
}

// RequireSession reads the session cookie, loads the session record, and
// stores the resolved Session plus HeaderData in the request context. A
// missing or stale session redirects to /login.
func RequireSession(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			return redirectToLogin(e)
		}

		rec, err := app.FindRecordById("sessions", cookie.Value)
		if err != nil {
			log.Printf("middleware: session %s not found, clearing cookie", cookie.Value)
			ClearSessionCookie(e)
			return redirectToLogin(e)
		}

		sess := &Session{
			ID:       rec.Id,
			Username: rec.GetString("username"),
			Token:    rec.GetString("backend_token"),
		}
		headerData := templates.HeaderData{
			Username:   sess.Username,
			ActivePage: activePage(e.Request.URL.Path),
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, sess)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// DropSession deletes the session record of the current request, if any.
// Used by logout and by the 401 recovery path when the backend token has
// expired.
func DropSession(app *pocketbase.PocketBase, e *core.RequestEvent) {
	sess := GetSession(e.Request)
	if sess == nil {
		return
	}
	if rec, err := app.FindRecordById("sessions", sess.ID); err == nil {
		if err := app.Delete(rec); err != nil {
			log.Printf("middleware: failed to delete session %s: %v", sess.ID, err)
		}
	}
	ClearSessionCookie(e)
}

func activePage(path string) string {
	switch {
	case path == "/" || path == "/dashboard":
		return "dashboard"
	case strings.HasPrefix(path, "/quotations/create"):
		return "builder"
	case strings.HasPrefix(path, "/suppliers"):
		return "suppliers"
	case strings.HasPrefix(path, "/items"):
		return "items"
	case strings.HasPrefix(path, "/quotations"):
		return "quotations"
	case strings.HasPrefix(path, "/uploads"):
		return "uploads"
	}
	return ""
}

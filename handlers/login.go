package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// LoginPage renders the login screen. A request that already carries a valid
// session goes straight to the dashboard.
func LoginPage(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if cookie, err := e.Request.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			if _, err := app.FindRecordById("sessions", cookie.Value); err == nil {
				return e.Redirect(http.StatusFound, "/")
			}
		}
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.LoginPage(templates.LoginData{}).Render(e.Request.Context(), e.Response)
	}
}

// LoginSubmit exchanges the posted credentials for a backend token, stores it
// in a new session record, and sets the session cookie.
func LoginSubmit(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		username := e.Request.FormValue("username")
		password := e.Request.FormValue("password")
		if username == "" || password == "" {
			return renderLoginError(e, username, "Username and password are required.")
		}

		token, err := client.Login(e.Request.Context(), username, password)
		if err != nil {
			log.Printf("login: authentication failed for %s: %v", username, err)
			return renderLoginError(e, username, backend.UserMessage(err))
		}

		col, err := app.FindCollectionByNameOrId("sessions")
		if err != nil {
			log.Printf("login: sessions collection missing: %v", err)
			return renderLoginError(e, username, "Could not start a session. Try again.")
		}
		rec := core.NewRecord(col)
		rec.Set("username", username)
		rec.Set("backend_token", token)
		if err := app.Save(rec); err != nil {
			log.Printf("login: failed to save session: %v", err)
			return renderLoginError(e, username, "Could not start a session. Try again.")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     SessionCookie,
			Value:    rec.Id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		SetToast(e, "success", "Logged in.")
		return e.Redirect(http.StatusFound, "/")
	}
}

// Logout drops the session record, clears the cookie and returns to /login.
func Logout(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		DropSession(app, e)
		return e.Redirect(http.StatusFound, "/login")
	}
}

func renderLoginError(e *core.RequestEvent, username, message string) error {
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return templates.LoginPage(templates.LoginData{
		Username: username,
		Error:    message,
	}).Render(e.Request.Context(), e.Response)
}

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/collections"
	"supplydesk/config"
	"supplydesk/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	app := pocketbase.New()
	client := backend.NewClient(cfg, handlers.TokenFromContext)

	// Create local state collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Login (outside the session gate) ─────────────────────
		se.Router.GET("/login", handlers.LoginPage(app))
		se.Router.POST("/login", handlers.LoginSubmit(app, client))

		// Everything below requires a session; the middleware also
		// stashes the backend token for the client.
		authed := se.Router.Group("")
		authed.BindFunc(handlers.RequireSession(app))

		authed.POST("/logout", handlers.Logout(app))

		// ── Dashboard ────────────────────────────────────────────
		authed.GET("/", handlers.Dashboard(app, client))

		// ── Supplier CRUD ────────────────────────────────────────
		authed.GET("/suppliers", handlers.SupplierList(app, client))
		authed.GET("/suppliers/create", handlers.SupplierCreateForm(app))
		authed.POST("/suppliers", handlers.SupplierCreate(app, client))
		authed.GET("/suppliers/{id}/edit", handlers.SupplierEditForm(app, client))
		authed.POST("/suppliers/{id}/save", handlers.SupplierUpdate(app, client))
		authed.DELETE("/suppliers/{id}", handlers.SupplierDelete(app, client))

		// ── Item CRUD ────────────────────────────────────────────
		authed.GET("/items", handlers.ItemList(app, client))
		authed.GET("/items/create", handlers.ItemCreateForm(app, client))
		authed.POST("/items", handlers.ItemCreate(app, client))
		authed.GET("/items/{id}/edit", handlers.ItemEditForm(app, client))
		authed.POST("/items/{id}/save", handlers.ItemUpdate(app, client))
		authed.DELETE("/items/{id}", handlers.ItemDelete(app, client))

		// ── Quotation builder (before /quotations/{id} routes) ───
		authed.GET("/quotations/create", handlers.BuilderPage(app, client))
		authed.POST("/quotations/create/supplier", handlers.BuilderSelectSupplier(app, client))
		authed.POST("/quotations/create/toggle", handlers.BuilderToggleProduct(app, client))
		authed.POST("/quotations/create/add", handlers.BuilderAddSelected(app, client))
		authed.POST("/quotations/create/remove", handlers.BuilderRemoveItem(app, client))
		authed.POST("/quotations/create/reset", handlers.BuilderReset(app, client))
		authed.POST("/quotations/create/submit", handlers.BuilderSubmit(app, client, cfg))

		// ── Quotations ───────────────────────────────────────────
		authed.GET("/quotations", handlers.QuotationList(app, client))
		authed.GET("/quotations/{id}/export/{format}", handlers.QuotationExport(app, client, cfg))
		authed.GET("/quotations/{id}/document", handlers.QuotationDocument(app))
		authed.GET("/quotations/{id}", handlers.QuotationView(app, client))
		authed.POST("/quotations/{id}/status", handlers.QuotationStatus(app, client))
		authed.DELETE("/quotations/{id}", handlers.QuotationDelete(app, client))

		// ── Supplier list upload ─────────────────────────────────
		authed.GET("/uploads", handlers.UploadPage(app))
		authed.POST("/uploads", handlers.UploadSubmit(app, client))
		authed.GET("/uploads/template", handlers.UploadTemplate())

		// Old SPA routes land on the builder
		authed.GET("/custom-quotation", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotations/create")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// Package collections creates the PocketBase collections that hold the
// dashboard's local UI state: login sessions, in-progress quotation drafts,
// upload history and post-submit rendered documents. Suppliers, items and
// quotations themselves live in the remote backend and are never stored
// here.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the local state collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "sessions", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "backend_token", Required: true})
		c.Fields.Add(&core.TextField{Name: "username", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	drafts := ensureCollection(app, "quotation_drafts", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "session", Required: true})
		c.Fields.Add(&core.TextField{Name: "supplier_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "supplier_id", Required: false})
		c.Fields.Add(&core.JSONField{Name: "selected_ids", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "draft_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "draft",
			Required:      true,
			CollectionId:  drafts.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "key", Required: true})
		c.Fields.Add(&core.TextField{Name: "product_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "product_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "supplier_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "supplier_name", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
		c.Fields.Add(&core.TextField{Name: "currency", Required: false})
		c.Fields.Add(&core.TextField{Name: "unit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
	})

	ensureCollection(app, "upload_logs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "filename", Required: true})
		c.Fields.Add(&core.NumberField{Name: "total_rows", Required: false})
		c.Fields.Add(&core.NumberField{Name: "valid_rows", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"forwarded", "rejected", "failed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "detail", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "rendered_documents", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quotation_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "filename", Required: true})
		c.Fields.Add(&core.TextField{Name: "pdf_base64", Required: false, Max: 10 << 20})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

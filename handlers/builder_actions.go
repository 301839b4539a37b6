package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/templates"
)

// BuilderSelectSupplier points the draft at a supplier. Switching supplier
// with accumulated items clears them; the builder enforces that.
func BuilderSelectSupplier(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		b, sess, err := restoreBuilder(app, client, e)
		if err != nil {
			return backendError(app, e, err)
		}

		hadItems := len(b.Draft().Items) > 0
		name := e.Request.FormValue("supplier_name")
		b.SelectSupplier(name)
		if hadItems && len(b.Draft().Items) == 0 {
			SetToast(e, "info", "Supplier changed. The previous draft items were cleared.")
		}
		return saveAndRenderBuilder(app, e, b, sess)
	}
}

// BuilderToggleProduct flips one product in the checkbox selection.
func BuilderToggleProduct(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		b, sess, err := restoreBuilder(app, client, e)
		if err != nil {
			return backendError(app, e, err)
		}

		b.ToggleProduct(e.Request.FormValue("product_id"))
		return saveAndRenderBuilder(app, e, b, sess)
	}
}

// BuilderAddSelected merges the checked products into the draft.
func BuilderAddSelected(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		b, sess, err := restoreBuilder(app, client, e)
		if err != nil {
			return backendError(app, e, err)
		}

		before := len(b.Draft().Items)
		b.AddSelected()
		added := len(b.Draft().Items) - before
		if added == 0 {
			SetToast(e, "info", "Nothing added. Check products first; items already in the draft are kept as-is.")
		}
		return saveAndRenderBuilder(app, e, b, sess)
	}
}

// BuilderRemoveItem drops one line from the draft.
func BuilderRemoveItem(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		b, sess, err := restoreBuilder(app, client, e)
		if err != nil {
			return backendError(app, e, err)
		}

		b.RemoveItem(e.Request.FormValue("key"))
		return saveAndRenderBuilder(app, e, b, sess)
	}
}

// BuilderReset discards the whole draft.
func BuilderReset(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		b, sess, err := restoreBuilder(app, client, e)
		if err != nil {
			return backendError(app, e, err)
		}

		b.Reset()
		ClearBuilderState(app, sess.ID)
		SetToast(e, "info", "Draft discarded.")

		data := builderData(b)
		header := GetHeaderData(e.Request)
		return render(e,
			templates.BuilderPage(data, header),
			templates.BuilderContent(data),
		)
	}
}

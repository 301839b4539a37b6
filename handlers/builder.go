package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/backend"
	"supplydesk/services"
	"supplydesk/templates"
)

// BuilderPage renders the quotation builder with the draft restored from the
// session. A catalog fetch failure still renders the screen so the operator
// can see the accumulated draft.
func BuilderPage(app *pocketbase.PocketBase, client *backend.Client) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := GetSession(e.Request)
		catalog, catalogErr := client.SupplierWiseProducts(e.Request.Context())
		if catalogErr != nil {
			if backend.IsUnauthorized(catalogErr) {
				DropSession(app, e)
				return redirectToLogin(e)
			}
			log.Printf("builder: failed to load supplier catalog: %v", catalogErr)
		}

		b := services.RestoreQuoteBuilder(catalog, LoadBuilderState(app, sess.ID))
		data := builderData(b)
		if catalogErr != nil {
			data.CatalogError = backend.UserMessage(catalogErr)
		}

		header := GetHeaderData(e.Request)
		return render(e,
			templates.BuilderPage(data, header),
			templates.BuilderContent(data),
		)
	}
}

// restoreBuilder loads the catalog and the persisted draft for a builder
// action. Unlike the page, actions fail hard on a catalog error: mutating a
// draft against a missing catalog would lose selections.
func restoreBuilder(app *pocketbase.PocketBase, client *backend.Client, e *core.RequestEvent) (*services.QuoteBuilder, *Session, error) {
	sess := GetSession(e.Request)
	catalog, err := client.SupplierWiseProducts(e.Request.Context())
	if err != nil {
		return nil, nil, err
	}
	return services.RestoreQuoteBuilder(catalog, LoadBuilderState(app, sess.ID)), sess, nil
}

// saveAndRenderBuilder persists the mutated draft and re-renders the builder
// region.
func saveAndRenderBuilder(app *pocketbase.PocketBase, e *core.RequestEvent, b *services.QuoteBuilder, sess *Session) error {
	if err := SaveBuilderState(app, sess.ID, b.State()); err != nil {
		log.Printf("builder: failed to persist draft for session %s: %v", sess.ID, err)
		SetToast(e, "error", "Could not save the draft. Your last change may be lost.")
	}

	data := builderData(b)
	header := GetHeaderData(e.Request)
	return render(e,
		templates.BuilderPage(data, header),
		templates.BuilderContent(data),
	)
}

func builderData(b *services.QuoteBuilder) templates.BuilderData {
	draft := b.Draft()
	data := templates.BuilderData{
		SupplierNames:    b.SupplierNames(),
		SelectedSupplier: b.SelectedSupplierName(),
		SelectedCount:    b.SelectedCount(),
		TotalAmount:      services.FormatAmount(draft.Total()),
		Currency:         draft.Currency(),
	}
	for _, o := range b.CatalogForSupplier() {
		id := o.ID.String()
		currency := o.Currency
		if currency == "" {
			currency = services.DefaultCurrency
		}
		data.Offerings = append(data.Offerings, templates.BuilderOffering{
			ID:          id,
			Name:        o.Name,
			Unit:        o.Unit,
			RetailPrice: o.RetailPrice,
			Currency:    currency,
			Selected:    b.IsSelected(id),
		})
	}
	for _, item := range draft.Items {
		data.Items = append(data.Items, templates.BuilderLineItem{
			Key:          item.Key,
			ProductName:  item.ProductName,
			SupplierName: item.SupplierName,
			Unit:         item.Unit,
			Price:        services.FormatAmount(item.Price),
			Currency:     item.Currency,
		})
	}
	return data
}

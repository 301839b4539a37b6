package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"supplydesk/backend"
)

// DefaultCurrency is assumed whenever an offering carries no currency of
// its own.
const DefaultCurrency = "USD"

// LineItem is one accumulated line of a draft quotation. Key is the
// product-supplier composite and is unique within a draft.
type LineItem struct {
	Key          string
	ProductID    string
	ProductName  string
	SupplierID   string
	SupplierName string
	Price        float64
	Currency     string
	Unit         string
}

// Draft is the in-progress quotation: at most one supplier, any number of
// distinct product lines.
type Draft struct {
	SupplierID string
	Items      []LineItem
}

// Total sums the line item prices (quantity is always 1 in this workflow).
func (d Draft) Total() float64 {
	var sum float64
	for _, item := range d.Items {
		sum += item.Price
	}
	return sum
}

// Currency returns the draft currency: the first item's currency, or the
// default for an empty draft.
func (d Draft) Currency() string {
	if len(d.Items) > 0 && d.Items[0].Currency != "" {
		return d.Items[0].Currency
	}
	return DefaultCurrency
}

// QuotationCreator is the single backend mutation the builder performs.
// *backend.Client satisfies it.
type QuotationCreator interface {
	CreateQuotation(ctx context.Context, payload backend.QuotationPayload) (backend.CreatedQuotation, error)
}

// NotifyFunc reports an outcome to the operator. Kind is one of "success",
// "error", "warning", "info". Fire and forget; it never affects control
// flow.
type NotifyFunc func(kind, message string)

// RenderFunc produces a downloadable document for a just-created quotation.
// Invoked only after a successful submit; its failure is non-fatal.
type RenderFunc func(doc QuoteDocument) error

// QuoteDocument is the reconstructed view of a created quotation handed to
// the document renderer.
type QuoteDocument struct {
	ID           string
	CreatedAt    string
	Title        string
	SupplierID   string
	SupplierName string
	Currency     string
	TotalAmount  string
	Items        []LineItem
}

// SubmitDeps bundles the collaborators Submit needs. The builder itself
// never touches HTTP or storage.
type SubmitDeps struct {
	Creator QuotationCreator
	Notify  NotifyFunc
	Render  RenderFunc
}

// QuoteBuilder maintains a consistent single-supplier draft quotation from
// operator selections. All methods are single-goroutine; the handler layer
// serializes access per session.
type QuoteBuilder struct {
	catalog      backend.SupplierCatalog
	supplierName string
	selected     map[string]bool
	draft        Draft
}

// NewQuoteBuilder creates an empty builder over a read-only supplier-wise
// catalog.
func NewQuoteBuilder(catalog backend.SupplierCatalog) *QuoteBuilder {
	if catalog == nil {
		catalog = backend.SupplierCatalog{}
	}
	return &QuoteBuilder{
		catalog:  catalog,
		selected: make(map[string]bool),
	}
}

// SupplierNames returns the catalog's supplier names, sorted for stable
// dropdown rendering.
func (b *QuoteBuilder) SupplierNames() []string {
	names := make([]string, 0, len(b.catalog))
	for name := range b.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectedSupplierName returns the current supplier pointer, empty when
// none is chosen.
func (b *QuoteBuilder) SelectedSupplierName() string {
	return b.supplierName
}

// CatalogForSupplier returns the offerings of the selected supplier, empty
// when no supplier is chosen.
func (b *QuoteBuilder) CatalogForSupplier() []backend.Offering {
	if b.supplierName == "" {
		return nil
	}
	return b.catalog[b.supplierName]
}

// IsSelected reports whether a product id is currently checked.
func (b *QuoteBuilder) IsSelected(productID string) bool {
	return b.selected[productID]
}

// SelectedCount returns how many products are currently checked.
func (b *QuoteBuilder) SelectedCount() int {
	return len(b.selected)
}

// Draft returns a copy of the accumulated draft.
func (b *QuoteBuilder) Draft() Draft {
	items := make([]LineItem, len(b.draft.Items))
	copy(items, b.draft.Items)
	return Draft{SupplierID: b.draft.SupplierID, Items: items}
}

// supplierIDFor resolves a supplier name to its id via the first offering,
// or "" when the name is empty or absent from the catalog.
func (b *QuoteBuilder) supplierIDFor(name string) string {
	offerings := b.catalog[name]
	if len(offerings) == 0 {
		return ""
	}
	return offerings[0].Supplier
}

// SelectSupplier points the builder at a supplier. Switching to a different
// supplier while the draft holds items clears the draft: a quotation cannot
// span suppliers, and changing supplier abandons the in-progress one.
// The product selection is always reset.
func (b *QuoteBuilder) SelectSupplier(name string) {
	newID := b.supplierIDFor(name)

	if len(b.draft.Items) > 0 && newID != "" && newID != b.draft.SupplierID {
		// Supplier switch with an existing draft: abandon the draft and
		// adopt the new supplier.
		b.draft.Items = nil
	}

	b.supplierName = name
	switch {
	case newID != "":
		b.draft.SupplierID = newID
	case len(b.draft.Items) == 0:
		// Deselecting (or picking an unknown name) with an empty draft
		// releases the supplier lock. With items present the lock stays:
		// the accumulated draft still belongs to its supplier.
		b.draft.SupplierID = ""
	}
	b.selected = make(map[string]bool)
}

// ToggleProduct flips a product in or out of the checkbox selection.
func (b *QuoteBuilder) ToggleProduct(productID string) {
	if productID == "" {
		return
	}
	if b.selected[productID] {
		delete(b.selected, productID)
	} else {
		b.selected[productID] = true
	}
}

// AddSelected merges the checked products into the draft as line items.
// Without a supplier or a selection it is a no-op. Products already in the
// draft are silently skipped: first write wins, no price update on re-add.
// The selection is cleared afterwards so the operator can keep picking from
// the same supplier.
func (b *QuoteBuilder) AddSelected() {
	if b.supplierName == "" || len(b.selected) == 0 {
		return
	}

	supplierID := b.draft.SupplierID
	if supplierID == "" {
		supplierID = b.supplierIDFor(b.supplierName)
	}

	existing := make(map[string]bool, len(b.draft.Items))
	for _, item := range b.draft.Items {
		existing[item.Key] = true
	}

	for _, offering := range b.CatalogForSupplier() {
		productID := offering.ID.String()
		if !b.selected[productID] {
			continue
		}
		key := productID + "-" + supplierID
		if existing[key] {
			continue
		}

		currency := offering.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		b.draft.Items = append(b.draft.Items, LineItem{
			Key:          key,
			ProductID:    productID,
			ProductName:  offering.Name,
			SupplierID:   supplierID,
			SupplierName: b.supplierName,
			Price:        ParsePrice(offering.RetailPrice),
			Currency:     currency,
			Unit:         offering.Unit,
		})
		existing[key] = true
	}

	b.draft.SupplierID = supplierID
	b.selected = make(map[string]bool)
}

// RemoveItem drops the line item with the given key. Removing the last item
// releases the supplier lock so any supplier can be selected afterwards
// without clearing anything.
func (b *QuoteBuilder) RemoveItem(key string) {
	items := b.draft.Items[:0]
	for _, item := range b.draft.Items {
		if item.Key != key {
			items = append(items, item)
		}
	}
	b.draft.Items = items
	if len(b.draft.Items) == 0 {
		b.draft.SupplierID = ""
	}
}

// Reset returns the builder to its initial state. The catalog is kept; it
// is read-only for the session.
func (b *QuoteBuilder) Reset() {
	b.supplierName = ""
	b.selected = make(map[string]bool)
	b.draft = Draft{}
}

// Submit validates the draft, posts it to the backend and reports the
// outcome through deps.Notify. On success the renderer is invoked with a
// reconstructed view of the created quotation and the builder resets fully;
// a renderer failure is downgraded to a warning and never rolls anything
// back. On a backend failure the draft is preserved so the operator can
// retry. The returned bool reports whether the quotation was created.
func (b *QuoteBuilder) Submit(ctx context.Context, title string, deps SubmitDeps) bool {
	if len(b.draft.Items) == 0 || b.draft.SupplierID == "" {
		deps.Notify("error", "Cannot create an empty quotation. Select a supplier and add products first.")
		return false
	}

	supplierName := b.draft.Items[0].SupplierName
	if title == "" {
		title = fmt.Sprintf("Quotation for %s - %s", supplierName, time.Now().Format("2006-01-02"))
	}

	currency := b.draft.Currency()
	total := b.draft.Total()

	payload := backend.QuotationPayload{
		SupplierID:  b.draft.SupplierID,
		TotalAmount: FormatAmount(total),
		Title:       title,
		Currency:    currency,
	}
	for _, item := range b.draft.Items {
		price := FormatAmount(item.Price)
		payload.Items = append(payload.Items, backend.QuotationItemPayload{
			ProductID:   jsonNumber(item.ProductID),
			UnitPrice:   price,
			TotalAmount: price,
		})
	}

	created, err := deps.Creator.CreateQuotation(ctx, payload)
	if err != nil {
		deps.Notify("error", backend.UserMessage(err))
		return false
	}

	deps.Notify("success", "Quotation created successfully.")

	doc := QuoteDocument{
		ID:           created.ID,
		CreatedAt:    created.CreatedAt,
		Title:        title,
		SupplierID:   b.draft.SupplierID,
		SupplierName: supplierName,
		Currency:     currency,
		TotalAmount:  FormatAmount(total),
		Items:        b.Draft().Items,
	}
	if doc.ID == "" {
		doc.ID = b.draft.SupplierID
	}
	if deps.Render != nil {
		if err := deps.Render(doc); err != nil {
			deps.Notify("warning", "Quotation was created but the document could not be generated. Use the export buttons on the quotation page instead.")
		}
	}

	b.Reset()
	return true
}

func jsonNumber(s string) json.Number {
	return json.Number(s)
}

package services

import (
	"sort"

	"supplydesk/backend"
)

// BuilderState is the serializable snapshot of a QuoteBuilder, persisted
// between requests by the handler layer. The catalog itself is not part of
// the state; it is re-fetched per builder session.
type BuilderState struct {
	SupplierName string     `json:"supplier_name"`
	SupplierID   string     `json:"supplier_id"`
	SelectedIDs  []string   `json:"selected_ids"`
	Items        []LineItem `json:"items"`
}

// State snapshots the builder for persistence.
func (b *QuoteBuilder) State() BuilderState {
	selected := make([]string, 0, len(b.selected))
	for id := range b.selected {
		selected = append(selected, id)
	}
	sort.Strings(selected)

	return BuilderState{
		SupplierName: b.supplierName,
		SupplierID:   b.draft.SupplierID,
		SelectedIDs:  selected,
		Items:        b.Draft().Items,
	}
}

// RestoreQuoteBuilder rebuilds a builder from a persisted snapshot over a
// freshly fetched catalog.
func RestoreQuoteBuilder(catalog backend.SupplierCatalog, state BuilderState) *QuoteBuilder {
	b := NewQuoteBuilder(catalog)
	b.supplierName = state.SupplierName
	b.draft = Draft{SupplierID: state.SupplierID, Items: state.Items}
	for _, id := range state.SelectedIDs {
		b.selected[id] = true
	}
	return b
}

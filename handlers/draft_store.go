package handlers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"supplydesk/services"
)

// LoadBuilderState reads the persisted quotation draft of a session. A
// session without a draft yields the zero state.
func LoadBuilderState(app *pocketbase.PocketBase, sessionID string) services.BuilderState {
	rec := findDraftRecord(app, sessionID)
	if rec == nil {
		return services.BuilderState{}
	}

	state := services.BuilderState{
		SupplierName: rec.GetString("supplier_name"),
		SupplierID:   rec.GetString("supplier_id"),
	}
	if raw := rec.GetString("selected_ids"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &state.SelectedIDs); err != nil {
			log.Printf("draft_store: corrupt selected_ids on draft %s: %v", rec.Id, err)
		}
	}

	items, err := app.FindRecordsByFilter("draft_items", "draft = {:draft}", "sort_order", 0, 0, map[string]any{"draft": rec.Id})
	if err != nil {
		log.Printf("draft_store: failed to load draft items for %s: %v", rec.Id, err)
		return state
	}
	for _, item := range items {
		state.Items = append(state.Items, services.LineItem{
			Key:          item.GetString("key"),
			ProductID:    item.GetString("product_id"),
			ProductName:  item.GetString("product_name"),
			SupplierID:   item.GetString("supplier_id"),
			SupplierName: item.GetString("supplier_name"),
			Price:        item.GetFloat("price"),
			Currency:     item.GetString("currency"),
			Unit:         item.GetString("unit"),
		})
	}
	return state
}

// SaveBuilderState replaces the persisted draft of a session with the given
// snapshot. Line items are rewritten wholesale; a draft holds at most a
// handful of them.
func SaveBuilderState(app *pocketbase.PocketBase, sessionID string, state services.BuilderState) error {
	rec := findDraftRecord(app, sessionID)
	if rec == nil {
		col, err := app.FindCollectionByNameOrId("quotation_drafts")
		if err != nil {
			return fmt.Errorf("draft_store: quotation_drafts collection missing: %w", err)
		}
		rec = core.NewRecord(col)
		rec.Set("session", sessionID)
	}

	selectedJSON, err := json.Marshal(state.SelectedIDs)
	if err != nil {
		return fmt.Errorf("draft_store: marshal selected ids: %w", err)
	}
	rec.Set("supplier_name", state.SupplierName)
	rec.Set("supplier_id", state.SupplierID)
	rec.Set("selected_ids", string(selectedJSON))
	if err := app.Save(rec); err != nil {
		return fmt.Errorf("draft_store: save draft: %w", err)
	}

	old, err := app.FindRecordsByFilter("draft_items", "draft = {:draft}", "", 0, 0, map[string]any{"draft": rec.Id})
	if err == nil {
		for _, item := range old {
			if err := app.Delete(item); err != nil {
				return fmt.Errorf("draft_store: clear old draft item: %w", err)
			}
		}
	}

	col, err := app.FindCollectionByNameOrId("draft_items")
	if err != nil {
		return fmt.Errorf("draft_store: draft_items collection missing: %w", err)
	}
	for i, item := range state.Items {
		itemRec := core.NewRecord(col)
		itemRec.Set("draft", rec.Id)
		itemRec.Set("key", item.Key)
		itemRec.Set("product_id", item.ProductID)
		itemRec.Set("product_name", item.ProductName)
		itemRec.Set("supplier_id", item.SupplierID)
		itemRec.Set("supplier_name", item.SupplierName)
		itemRec.Set("price", item.Price)
		itemRec.Set("currency", item.Currency)
		itemRec.Set("unit", item.Unit)
		itemRec.Set("sort_order", i+1)
		if err := app.Save(itemRec); err != nil {
			return fmt.Errorf("draft_store: save draft item %s: %w", item.Key, err)
		}
	}
	return nil
}

// ClearBuilderState drops the persisted draft of a session. Draft items
// cascade with the draft record.
func ClearBuilderState(app *pocketbase.PocketBase, sessionID string) {
	rec := findDraftRecord(app, sessionID)
	if rec == nil {
		return
	}
	if err := app.Delete(rec); err != nil {
		log.Printf("draft_store: failed to delete draft %s: %v", rec.Id, err)
	}
}

func findDraftRecord(app *pocketbase.PocketBase, sessionID string) *core.Record {
	recs, err := app.FindRecordsByFilter("quotation_drafts", "session = {:session}", "-created", 1, 0, map[string]any{"session": sessionID})
	if err != nil || len(recs) == 0 {
		return nil
	}
	return recs[0]
}

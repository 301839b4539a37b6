package backend

import "context"

// SupplierWiseProducts fetches the full supplier-to-products catalog that
// backs the quotation builder. The catalog is read-only for the lifetime of
// a draft.
func (c *Client) SupplierWiseProducts(ctx context.Context) (SupplierCatalog, error) {
	var out SupplierCatalog
	if err := c.get(ctx, "custom-quotation/", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = SupplierCatalog{}
	}
	return out, nil
}

// CreateQuotation submits a finished draft. The one mutation the quotation
// builder performs.
func (c *Client) CreateQuotation(ctx context.Context, payload QuotationPayload) (CreatedQuotation, error) {
	var out CreatedQuotation
	err := c.send(ctx, "POST", "quotations/", payload, &out)
	return out, err
}

// ListQuotations fetches one page of quotations.
func (c *Client) ListQuotations(ctx context.Context, page, limit int, search string) (Page[Quotation], error) {
	var env listEnvelope[Quotation]
	if err := c.get(ctx, "quotations/", listParams(page, limit, search), &env); err != nil {
		return Page[Quotation]{}, err
	}
	return Page[Quotation]{Results: env.Results, Total: env.Count}, nil
}

func (c *Client) GetQuotation(ctx context.Context, id string) (Quotation, error) {
	var out Quotation
	err := c.get(ctx, "quotations/"+id+"/", nil, &out)
	return out, err
}

// UpdateQuotationStatus patches just the status field of a quotation.
func (c *Client) UpdateQuotationStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.send(ctx, "PATCH", "quotations/"+id+"/", body, nil)
}

func (c *Client) DeleteQuotation(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "quotations/"+id+"/", nil, nil)
}

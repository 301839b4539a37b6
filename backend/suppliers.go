package backend

import (
	"context"
	"strconv"
)

// ListSuppliers fetches one page of suppliers, optionally filtered by a
// search term.
func (c *Client) ListSuppliers(ctx context.Context, page, limit int, search string) (Page[Supplier], error) {
	var env listEnvelope[Supplier]
	err := c.get(ctx, "suppliers/", listParams(page, limit, search), &env)
	if err != nil {
		return Page[Supplier]{}, err
	}
	return Page[Supplier]{Results: env.Results, Total: env.Count}, nil
}

func (c *Client) GetSupplier(ctx context.Context, id string) (Supplier, error) {
	var out Supplier
	err := c.get(ctx, "suppliers/"+id+"/", nil, &out)
	return out, err
}

func (c *Client) CreateSupplier(ctx context.Context, in SupplierInput) (Supplier, error) {
	var out Supplier
	err := c.send(ctx, "POST", "suppliers/", in, &out)
	return out, err
}

func (c *Client) UpdateSupplier(ctx context.Context, id string, in SupplierInput) (Supplier, error) {
	var out Supplier
	err := c.send(ctx, "PUT", "suppliers/"+id+"/", in, &out)
	return out, err
}

func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "suppliers/"+id+"/", nil, nil)
}

func listParams(page, limit int, search string) map[string]string {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	params := map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
	if search != "" {
		params["search"] = search
	}
	return params
}

package backend

import "context"

// ItemFilter narrows an item listing. Zero values mean "no filter".
type ItemFilter struct {
	Search     string
	SupplierID string
}

// ListItems fetches one page of products.
func (c *Client) ListItems(ctx context.Context, page, limit int, filter ItemFilter) (Page[Item], error) {
	params := listParams(page, limit, filter.Search)
	if filter.SupplierID != "" {
		params["supplierId"] = filter.SupplierID
	}

	var env listEnvelope[Item]
	if err := c.get(ctx, "products/", params, &env); err != nil {
		return Page[Item]{}, err
	}
	return Page[Item]{Results: env.Results, Total: env.Count}, nil
}

func (c *Client) GetItem(ctx context.Context, id string) (Item, error) {
	var out Item
	err := c.get(ctx, "products/"+id+"/", nil, &out)
	return out, err
}

func (c *Client) CreateItem(ctx context.Context, in ItemInput) (Item, error) {
	var out Item
	err := c.send(ctx, "POST", "products/", in, &out)
	return out, err
}

func (c *Client) UpdateItem(ctx context.Context, id string, in ItemInput) (Item, error) {
	var out Item
	err := c.send(ctx, "PUT", "products/"+id+"/", in, &out)
	return out, err
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.send(ctx, "DELETE", "products/"+id+"/", nil, nil)
}

package backend

import "encoding/json"

// Supplier is a supplier record as the backend returns it.
type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	Country     string `json:"country"`
	Address     string `json:"address"`
	CreatedAt   string `json:"created_at"`
}

// SupplierInput is the request body for creating or updating a supplier.
type SupplierInput struct {
	Name        string `json:"name"`
	ContactName string `json:"contact_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Country     string `json:"country,omitempty"`
	Address     string `json:"address,omitempty"`
}

// Item is a product record owned by the backend.
type Item struct {
	ID              json.Number `json:"id"`
	Name            string      `json:"name"`
	Unit            string      `json:"unit"`
	Packing         string      `json:"packing"`
	CountryOfOrigin string      `json:"country_of_origin"`
	Currency        string      `json:"currency"`
	RetailPrice     string      `json:"retail_price"`
	WholesalePrice  string      `json:"wholesale_price"`
	Supplier        string      `json:"supplier"`
	SupplierName    string      `json:"supplier_name"`
	CreatedAt       string      `json:"created_at"`
}

// ItemInput is the request body for creating or updating an item.
type ItemInput struct {
	Name            string `json:"name"`
	Unit            string `json:"unit,omitempty"`
	Packing         string `json:"packing,omitempty"`
	CountryOfOrigin string `json:"country_of_origin,omitempty"`
	Currency        string `json:"currency,omitempty"`
	RetailPrice     string `json:"retail_price,omitempty"`
	WholesalePrice  string `json:"wholesale_price,omitempty"`
	Supplier        string `json:"supplier,omitempty"`
}

// Offering is one product as offered by one supplier, taken from the
// supplier-wise catalog. Immutable once fetched.
type Offering struct {
	ID              json.Number `json:"id"`
	Name            string      `json:"name"`
	Unit            string      `json:"unit"`
	Packing         string      `json:"packing"`
	CountryOfOrigin string      `json:"country_of_origin"`
	Currency        string      `json:"currency"`
	RetailPrice     string      `json:"retail_price"`
	Supplier        string      `json:"supplier"`
	SupplierName    string      `json:"supplier_name"`
}

// SupplierCatalog maps a supplier name to the products that supplier offers.
type SupplierCatalog map[string][]Offering

// QuotationItemPayload is one line of a create-quotation request.
// Quantity is not tracked by this dashboard, so per-item total equals
// the unit price.
type QuotationItemPayload struct {
	ProductID   json.Number `json:"product_id"`
	UnitPrice   string      `json:"unit_price"`
	TotalAmount string      `json:"total_amount"`
}

// QuotationPayload is the create-quotation request body. Its shape is
// dictated by the backend.
type QuotationPayload struct {
	SupplierID  string                 `json:"supplier_id"`
	TotalAmount string                 `json:"total_amount"`
	Items       []QuotationItemPayload `json:"items"`
	Title       string                 `json:"title"`
	Currency    string                 `json:"currency"`
}

// Quotation is a quotation record as the backend returns it.
type Quotation struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Supplier     string          `json:"supplier"`
	SupplierName string          `json:"supplier_name"`
	Status       string          `json:"status"`
	Currency     string          `json:"currency"`
	TotalAmount  string          `json:"total_amount"`
	CreatedAt    string          `json:"created_at"`
	Items        []QuotationItem `json:"items"`
}

// QuotationItem is one stored line of a quotation.
type QuotationItem struct {
	ID          json.Number `json:"id"`
	ProductID   json.Number `json:"product_id"`
	ProductName string      `json:"product_name"`
	Quantity    json.Number `json:"quantity"`
	UnitPrice   string      `json:"unit_price"`
	TotalPrice  string      `json:"total_price"`
	Unit        string      `json:"unit"`
}

// CreatedQuotation is the backend's answer to a create call. Only the id
// and timestamp are relied upon; everything else is best-effort.
type CreatedQuotation struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

// Page bundles one page of a paginated listing.
type Page[T any] struct {
	Results []T
	Total   int
}

// listEnvelope is the backend's pagination wrapper: {count, results}.
type listEnvelope[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// DashboardStats is the aggregate counters shown on the landing page.
type DashboardStats struct {
	Suppliers  int `json:"suppliers"`
	Items      int `json:"items"`
	Quotations int `json:"quotations"`
	Uploads    int `json:"uploads"`
}

// UploadResult is the backend's answer to a supplier list upload.
type UploadResult struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

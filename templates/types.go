package templates

// HeaderData feeds the top bar: who is logged in, where we are.
type HeaderData struct {
	Username   string
	ActivePage string
}

// Pagination drives the pager under every list table.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	BaseURL    string
	Search     string
}

// TotalPages derives the page count from Total and Limit.
func (p Pagination) TotalPages() int {
	if p.Limit <= 0 {
		return 1
	}
	pages := (p.Total + p.Limit - 1) / p.Limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// LoginData feeds the login screen.
type LoginData struct {
	Username string
	Error    string
}

// DashboardData feeds the landing page stat cards.
type DashboardData struct {
	Suppliers  int
	Items      int
	Quotations int
	Uploads    int
	LoadError  string
}

// SupplierRow is one row of the supplier table.
type SupplierRow struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Mobile      string
	Country     string
}

// SupplierListData feeds the supplier list screen.
type SupplierListData struct {
	Suppliers  []SupplierRow
	Pagination Pagination
}

// SupplierFormData feeds the supplier create/edit form.
type SupplierFormData struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Mobile      string
	Country     string
	Address     string
	Errors      map[string]string
}

// ItemRow is one row of the items table.
type ItemRow struct {
	ID           string
	Name         string
	Unit         string
	Packing      string
	Currency     string
	RetailPrice  string
	SupplierName string
}

// SupplierOption is one entry of a supplier dropdown.
type SupplierOption struct {
	ID   string
	Name string
}

// ItemListData feeds the items list screen.
type ItemListData struct {
	Items          []ItemRow
	Suppliers      []SupplierOption
	SupplierFilter string
	Pagination     Pagination
}

// ItemFormData feeds the item create/edit form.
type ItemFormData struct {
	ID              string
	Name            string
	Unit            string
	Packing         string
	CountryOfOrigin string
	Currency        string
	RetailPrice     string
	WholesalePrice  string
	Supplier        string
	Suppliers       []SupplierOption
	Errors          map[string]string
}

// QuotationRow is one row of the quotations table.
type QuotationRow struct {
	ID           string
	Title        string
	SupplierName string
	Status       string
	Currency     string
	TotalAmount  string
	CreatedAt    string
}

// QuotationListData feeds the quotation list screen.
type QuotationListData struct {
	Quotations []QuotationRow
	Pagination Pagination
}

// QuotationItemRow is one line of a stored quotation on the view screen.
type QuotationItemRow struct {
	ProductName string
	Unit        string
	Quantity    string
	UnitPrice   string
	TotalPrice  string
}

// QuotationViewData feeds the single-quotation screen.
type QuotationViewData struct {
	ID             string
	Title          string
	SupplierName   string
	Status         string
	StatusOptions  []string
	Currency       string
	TotalAmount    string
	CreatedAt      string
	Items          []QuotationItemRow
	HasRenderedPDF bool
}

// BuilderOffering is one product row in the quote builder's catalog panel.
type BuilderOffering struct {
	ID          string
	Name        string
	Unit        string
	RetailPrice string
	Currency    string
	Selected    bool
}

// BuilderLineItem is one accumulated draft line on the builder screen.
type BuilderLineItem struct {
	Key          string
	ProductName  string
	SupplierName string
	Unit         string
	Price        string
	Currency     string
}

// BuilderData feeds the quotation builder screen.
type BuilderData struct {
	SupplierNames    []string
	SelectedSupplier string
	Offerings        []BuilderOffering
	SelectedCount    int
	Items            []BuilderLineItem
	TotalAmount      string
	Currency         string
	CatalogError     string
}

// UploadLogRow is one entry in the upload history table.
type UploadLogRow struct {
	Filename  string
	TotalRows int
	ValidRows int
	Status    string
	Detail    string
	Created   string
}

// UploadRowErrorView is one pre-validation error rendered on the upload
// screen.
type UploadRowErrorView struct {
	Row     int
	Field   string
	Message string
}

// UploadData feeds the supplier list upload screen.
type UploadData struct {
	Logs      []UploadLogRow
	RowErrors []UploadRowErrorView
}

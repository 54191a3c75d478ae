package model

// CatalogView is the marketplace screen: the supplier grid or, when a stall
// is entered, that stall's products and reviews.
type CatalogView struct {
	Suppliers      []Supplier     `json:"suppliers"`
	SupplierFilter SupplierFilter `json:"supplier_filter"`
	ProductFilter  ProductFilter  `json:"product_filter"`
	Empty          bool           `json:"empty"`
	EmptyMessage   string         `json:"empty_message,omitempty"`
	ActiveSupplier *Supplier      `json:"active_supplier,omitempty"`
	Products       []ProductCard  `json:"products"`
	Reviews        []Review       `json:"reviews"`
	Loading        bool           `json:"loading"`
}

// DashboardView is the supplier's own screen.
type DashboardView struct {
	Tab         string      `json:"tab"`
	NeedsStall  bool        `json:"needs_stall"`
	Stall       *Supplier   `json:"stall,omitempty"`
	Products    []Product   `json:"products"`
	Analytics   *Analytics  `json:"analytics,omitempty"`
	Orders      []Order     `json:"orders"`
	ProductForm ProductForm `json:"product_form"`
	Loading     bool        `json:"loading"`
}

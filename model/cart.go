package model

// CartItem is a line of the server-held cart. PricePerUnit is the price
// snapshot taken when the item was added.
type CartItem struct {
	ProductID    string  `json:"product_id"`
	SupplierID   string  `json:"supplier_id"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
	Name         string  `json:"name,omitempty"`
}

// Cart mirrors GET /cart. TotalAmount is computed by the backend only.
type Cart struct {
	ID          string     `json:"id,omitempty"`
	VendorID    string     `json:"vendor_id,omitempty"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
}

// AddCartItemRequest is the body of POST /cart/add.
type AddCartItemRequest struct {
	ProductID    string  `json:"product_id"`
	SupplierID   string  `json:"supplier_id"`
	Quantity     int     `json:"quantity"`
	PricePerUnit float64 `json:"price_per_unit"`
}

// CartView is the rendered cart.
type CartView struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total_amount"`
	TotalText string     `json:"total"`
	Loading   bool       `json:"loading"`
}

// Quantity returns the displayed quantity of a product, zero when absent.
func (c Cart) Quantity(productID string) int {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it.Quantity
		}
	}
	return 0
}

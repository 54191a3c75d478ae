package model

type Order struct {
	ID          string     `json:"id"`
	VendorID    string     `json:"vendor_id"`
	SupplierID  string     `json:"supplier_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	Status      string     `json:"status"`
	CreatedAt   Timestamp  `json:"created_at"`
}

type TopProduct struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

// Analytics mirrors GET /analytics/dashboard.
type Analytics struct {
	TotalProducts int          `json:"total_products"`
	TotalOrders   int          `json:"total_orders"`
	TotalRevenue  float64      `json:"total_revenue"`
	TopProducts   []TopProduct `json:"top_products"`
	Rating        float64      `json:"rating"`
	TotalReviews  int          `json:"total_reviews"`
}

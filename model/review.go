package model

type Review struct {
	ID         string    `json:"id"`
	VendorID   string    `json:"vendor_id"`
	SupplierID string    `json:"supplier_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  Timestamp `json:"created_at"`
}

// ReviewRequest is the review form and the body of POST /reviews.
type ReviewRequest struct {
	SupplierID string `json:"supplier_id" validate:"required"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Comment    string `json:"comment" validate:"required"`
}

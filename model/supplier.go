package model

import (
	"net/url"
	"strings"
)

// Supplier is a stall as listed by the backend.
type Supplier struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	StallName      string    `json:"stall_name"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	ContactPhone   string    `json:"contact_phone"`
	Location       string    `json:"location"`
	Rating         float64   `json:"rating"`
	DeliveryRating float64   `json:"delivery_rating"`
	TotalReviews   int       `json:"total_reviews"`
	CreatedAt      Timestamp `json:"created_at"`
}

// StallRequest creates the supplier's own stall.
type StallRequest struct {
	StallName    string `json:"stall_name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	ImageURL     string `json:"image_url"`
	ContactPhone string `json:"contact_phone" validate:"required"`
	Location     string `json:"location" validate:"required"`
}

// SupplierFilter narrows the supplier listing. Empty fields apply no
// constraint.
type SupplierFilter struct {
	Category  string `json:"category"`
	MinRating string `json:"min_rating"`
	Location  string `json:"location"`
	// MinQuantity is kept for the filter panel; the listing endpoint has no
	// matching parameter so it is never sent.
	MinQuantity string `json:"min_quantity"`
}

// Query encodes the non-empty filter fields.
func (f SupplierFilter) Query() url.Values {
	q := url.Values{}
	setIfPresent(q, "category", f.Category)
	setIfPresent(q, "min_rating", f.MinRating)
	setIfPresent(q, "location", f.Location)
	return q
}

func setIfPresent(q url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		q.Set(key, v)
	}
}

package model

import "time"

// ActivityEvent announces an acknowledged change so that other running
// clients of the same account can refresh. Type doubles as routing key.
type ActivityEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Source     string    `json:"source"`
	UserID     string    `json:"user_id"`
	SupplierID string    `json:"supplier_id,omitempty"`
	ProductID  string    `json:"product_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

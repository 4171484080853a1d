package dto

import "time"

// OrderRequest describes order registration payload.
type OrderRequest struct {
	Total float64 `json:"total"`
}

// OrderResponse describes a registered order.
type OrderResponse struct {
	ID        int64     `json:"id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// RefundTotalResponse reports the refunded sum for an order.
type RefundTotalResponse struct {
	OrderID int64   `json:"order_id"`
	Total   float64 `json:"total"`
}

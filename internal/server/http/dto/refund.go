package dto

import "time"

// CreateRefundRequest describes refund creation payload.
type CreateRefundRequest struct {
	OrderID int64   `json:"order_id"`
	Reason  string  `json:"reason"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}

// UpdateRefundRequest describes a partial refund update; absent fields stay untouched.
type UpdateRefundRequest struct {
	Reason *string  `json:"reason"`
	Amount *float64 `json:"amount"`
	Status *string  `json:"status"`
}

// RefundAmountRequest carries a replacement refund amount.
type RefundAmountRequest struct {
	Amount float64 `json:"amount"`
}

// RefundResponse describes a refund record.
type RefundResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Reason    string    `json:"reason,omitempty"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EligibilityResponse reports whether a refund is inside its window.
type EligibilityResponse struct {
	RefundID   int64 `json:"refund_id"`
	Eligible   bool  `json:"eligible"`
	WindowDays int   `json:"window_days"`
}

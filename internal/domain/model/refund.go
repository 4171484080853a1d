package model

import "time"

// RefundStatus describes refund lifecycle state.
type RefundStatus string

const (
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusApproved  RefundStatus = "APPROVED"
	RefundStatusRejected  RefundStatus = "REJECTED"
	RefundStatusCancelled RefundStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s RefundStatus) Valid() bool {
	switch s {
	case RefundStatusPending, RefundStatusApproved, RefundStatusRejected, RefundStatusCancelled:
		return true
	}
	return false
}

// Closed reports whether the status is terminal.
func (s RefundStatus) Closed() bool {
	return s.Valid() && s != RefundStatusPending
}

// Refund describes a monetary reimbursement request tied to one order.
type Refund struct {
	ID        int64
	OrderID   int64
	Reason    string
	Amount    float64
	Status    RefundStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

package repository

import (
	"context"

	"github.com/eshopcore/backoffice/internal/domain/model"
)

// CreateRefundParams carries the caller-supplied fields of a new refund.
type CreateRefundParams struct {
	OrderID int64
	Reason  string
	Amount  float64
	Status  model.RefundStatus
}

// RefundUpdate describes a partial administrative update. Nil fields stay
// untouched.
type RefundUpdate struct {
	Reason *string
	Amount *float64
	Status *model.RefundStatus
}

// RefundRepository describes persistence operations with refunds.
type RefundRepository interface {
	Create(ctx context.Context, params CreateRefundParams) (*model.Refund, error)
	GetByID(ctx context.Context, id int64) (*model.Refund, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Refund, error)
	ListByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error)
	Update(ctx context.Context, id int64, update RefundUpdate) (*model.Refund, error)
	SetStatus(ctx context.Context, id int64, status model.RefundStatus) (*model.Refund, error)
	Delete(ctx context.Context, id int64) (bool, error)
	TotalByOrder(ctx context.Context, orderID int64) (float64, error)
}

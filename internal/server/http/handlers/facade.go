package handlers

import (
	"context"

	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
)

// SessionFacade describes authentication capabilities required by handlers.
type SessionFacade interface {
	OpenSession(accessKey string) (string, error)
	ParseToken(token string) (string, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	RegisterOrder(ctx context.Context, total float64) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	OrderRefunds(ctx context.Context, orderID int64) ([]model.Refund, error)
	TotalRefunded(ctx context.Context, orderID int64) (float64, error)
}

// RefundFacade provides refund lifecycle operations.
type RefundFacade interface {
	CreateRefund(ctx context.Context, params repository.CreateRefundParams) (*model.Refund, error)
	Refund(ctx context.Context, id int64) (*model.Refund, error)
	RefundsByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error)
	UpdateRefund(ctx context.Context, id int64, update repository.RefundUpdate) (*model.Refund, error)
	DeleteRefund(ctx context.Context, id int64) bool
	ApproveRefund(ctx context.Context, id int64) (*model.Refund, error)
	RejectRefund(ctx context.Context, id int64) (*model.Refund, error)
	CancelRefund(ctx context.Context, id int64) (*model.Refund, error)
	IssuePartialRefund(ctx context.Context, id int64, amount float64) (*model.Refund, error)
	RefundEligible(ctx context.Context, id int64, windowDays int) (bool, error)
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	SessionFacade
	OrderFacade
	RefundFacade
}

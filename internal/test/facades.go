package test

import (
	"context"
	"sync"

	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
)

// SessionFacadeStub provides controllable behaviour for session endpoints.
type SessionFacadeStub struct {
	OpenFn  func(string) (string, error)
	ParseFn func(string) (string, error)
}

// OpenSession delegates to the provided function or returns a fixed token.
func (s SessionFacadeStub) OpenSession(accessKey string) (string, error) {
	if s.OpenFn != nil {
		return s.OpenFn(accessKey)
	}
	return "token", nil
}

// ParseToken resolves the operator behind a session token.
func (s SessionFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "operator", nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	RegisterFn func(context.Context, float64) (*model.Order, error)
	OrderFn    func(context.Context, int64) (*model.Order, error)
	RefundsFn  func(context.Context, int64) ([]model.Refund, error)
	TotalFn    func(context.Context, int64) (float64, error)
}

// RegisterOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) RegisterOrder(ctx context.Context, total float64) (*model.Order, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, total)
	}
	return &model.Order{ID: 1, Total: total}, nil
}

// Order returns a predefined order.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Total: 100}, nil
}

// OrderRefunds returns predefined refunds for the order.
func (s OrderFacadeStub) OrderRefunds(ctx context.Context, orderID int64) ([]model.Refund, error) {
	if s.RefundsFn != nil {
		return s.RefundsFn(ctx, orderID)
	}
	return []model.Refund{{ID: 1, OrderID: orderID, Status: model.RefundStatusPending}}, nil
}

// TotalRefunded returns the configured refund sum.
func (s OrderFacadeStub) TotalRefunded(ctx context.Context, orderID int64) (float64, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx, orderID)
	}
	return 0, nil
}

// RefundFacadeStub simulates refund lifecycle operations.
type RefundFacadeStub struct {
	CreateFn       func(context.Context, repository.CreateRefundParams) (*model.Refund, error)
	RefundFn       func(context.Context, int64) (*model.Refund, error)
	ListByStatusFn func(context.Context, model.RefundStatus) ([]model.Refund, error)
	UpdateFn       func(context.Context, int64, repository.RefundUpdate) (*model.Refund, error)
	DeleteFn       func(context.Context, int64) bool
	ProcessFn      func(context.Context, int64, model.RefundStatus) (*model.Refund, error)
	IssueFn        func(context.Context, int64, float64) (*model.Refund, error)
	EligibleFn     func(context.Context, int64, int) (bool, error)
}

// CreateRefund delegates to the provided function or echoes the params.
func (s RefundFacadeStub) CreateRefund(ctx context.Context, params repository.CreateRefundParams) (*model.Refund, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, params)
	}
	status := params.Status
	if status == "" {
		status = model.RefundStatusPending
	}
	return &model.Refund{ID: 1, OrderID: params.OrderID, Reason: params.Reason, Amount: params.Amount, Status: status}, nil
}

// Refund returns a predefined refund.
func (s RefundFacadeStub) Refund(ctx context.Context, id int64) (*model.Refund, error) {
	if s.RefundFn != nil {
		return s.RefundFn(ctx, id)
	}
	return &model.Refund{ID: id, OrderID: 1, Status: model.RefundStatusPending}, nil
}

// RefundsByStatus returns predefined refunds in the status.
func (s RefundFacadeStub) RefundsByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status)
	}
	return []model.Refund{{ID: 1, OrderID: 1, Status: status}}, nil
}

// UpdateRefund delegates to the provided function or returns an updated copy.
func (s RefundFacadeStub) UpdateRefund(ctx context.Context, id int64, update repository.RefundUpdate) (*model.Refund, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	refund := &model.Refund{ID: id, OrderID: 1, Status: model.RefundStatusPending}
	if update.Reason != nil {
		refund.Reason = *update.Reason
	}
	if update.Amount != nil {
		refund.Amount = *update.Amount
	}
	if update.Status != nil {
		refund.Status = *update.Status
	}
	return refund, nil
}

// DeleteRefund reports configured deletion outcome.
func (s RefundFacadeStub) DeleteRefund(ctx context.Context, id int64) bool {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return true
}

// ProcessRefund delegates to the provided function or applies the status.
func (s RefundFacadeStub) ProcessRefund(ctx context.Context, id int64, status model.RefundStatus) (*model.Refund, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, id, status)
	}
	return &model.Refund{ID: id, OrderID: 1, Status: status}, nil
}

// ApproveRefund resolves the refund as approved.
func (s RefundFacadeStub) ApproveRefund(ctx context.Context, id int64) (*model.Refund, error) {
	return s.ProcessRefund(ctx, id, model.RefundStatusApproved)
}

// RejectRefund resolves the refund as rejected.
func (s RefundFacadeStub) RejectRefund(ctx context.Context, id int64) (*model.Refund, error) {
	return s.ProcessRefund(ctx, id, model.RefundStatusRejected)
}

// CancelRefund resolves the refund as cancelled.
func (s RefundFacadeStub) CancelRefund(ctx context.Context, id int64) (*model.Refund, error) {
	return s.ProcessRefund(ctx, id, model.RefundStatusCancelled)
}

// IssuePartialRefund delegates to the provided function or replaces the amount.
func (s RefundFacadeStub) IssuePartialRefund(ctx context.Context, id int64, amount float64) (*model.Refund, error) {
	if s.IssueFn != nil {
		return s.IssueFn(ctx, id, amount)
	}
	return &model.Refund{ID: id, OrderID: 1, Amount: amount, Status: model.RefundStatusPending}, nil
}

// RefundEligible reports the configured eligibility verdict.
func (s RefundFacadeStub) RefundEligible(ctx context.Context, id int64, windowDays int) (bool, error) {
	if s.EligibleFn != nil {
		return s.EligibleFn(ctx, id, windowDays)
	}
	return true, nil
}

// SweeperFacadeStub records sweep lookups for worker tests.
type SweeperFacadeStub struct {
	mu    sync.Mutex
	calls []model.RefundStatus

	ListByStatusFn func(context.Context, model.RefundStatus) ([]model.Refund, error)
	EligibleFn     func(context.Context, int64, int) (bool, error)
}

// RefundsByStatus records the call and returns configured refunds.
func (s *SweeperFacadeStub) RefundsByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error) {
	s.mu.Lock()
	s.calls = append(s.calls, status)
	s.mu.Unlock()
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

// RefundEligible reports the configured eligibility verdict.
func (s *SweeperFacadeStub) RefundEligible(ctx context.Context, id int64, windowDays int) (bool, error) {
	if s.EligibleFn != nil {
		return s.EligibleFn(ctx, id, windowDays)
	}
	return true, nil
}

// Calls returns the statuses the sweeper has listed so far.
func (s *SweeperFacadeStub) Calls() []model.RefundStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.RefundStatus, len(s.calls))
	copy(out, s.calls)
	return out
}

// TokenParserStub resolves session tokens with a fixed outcome.
type TokenParserStub struct {
	Operator string
	Err      error
}

// ParseToken returns the configured operator or error.
func (s TokenParserStub) ParseToken(string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	if s.Operator == "" {
		return "operator", nil
	}
	return s.Operator, nil
}

// BackofficeFacadeStub aggregates every facade surface for router tests.
type BackofficeFacadeStub struct {
	SessionFacadeStub
	OrderFacadeStub
	RefundFacadeStub
}

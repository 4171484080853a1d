package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
)

// RefundRepositoryStub keeps refunds in-memory and allows per-method
// overrides for failure injection.
type RefundRepositoryStub struct {
	Refunds map[int64]*model.Refund
	Next    int64
	Err     error

	CreateFn       func(context.Context, repository.CreateRefundParams) (*model.Refund, error)
	GetByIDFn      func(context.Context, int64) (*model.Refund, error)
	ListByOrderFn  func(context.Context, int64) ([]model.Refund, error)
	ListByStatusFn func(context.Context, model.RefundStatus) ([]model.Refund, error)
	UpdateFn       func(context.Context, int64, repository.RefundUpdate) (*model.Refund, error)
	SetStatusFn    func(context.Context, int64, model.RefundStatus) (*model.Refund, error)
	DeleteFn       func(context.Context, int64) (bool, error)
	TotalFn        func(context.Context, int64) (float64, error)
}

// NewRefundRepositoryStub constructs stub repository with initialized state.
func NewRefundRepositoryStub() *RefundRepositoryStub {
	return &RefundRepositoryStub{Refunds: make(map[int64]*model.Refund), Next: 1}
}

func (s *RefundRepositoryStub) ensure() {
	if s.Refunds == nil {
		s.Refunds = make(map[int64]*model.Refund)
	}
	if s.Next == 0 {
		s.Next = 1
	}
}

// Create stores a refund and assigns the next identifier.
func (s *RefundRepositoryStub) Create(ctx context.Context, params repository.CreateRefundParams) (*model.Refund, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, params)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.ensure()
	now := time.Now()
	refund := &model.Refund{
		ID:        s.Next,
		OrderID:   params.OrderID,
		Reason:    params.Reason,
		Amount:    params.Amount,
		Status:    params.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Next++
	s.Refunds[refund.ID] = refund
	copied := *refund
	return &copied, nil
}

// GetByID fetches a refund copy or reports not found.
func (s *RefundRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Refund, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	refund, ok := s.Refunds[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *refund
	return &copied, nil
}

// ListByOrder returns stored refunds for the order in id order.
func (s *RefundRepositoryStub) ListByOrder(ctx context.Context, orderID int64) ([]model.Refund, error) {
	if s.ListByOrderFn != nil {
		return s.ListByOrderFn(ctx, orderID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(r *model.Refund) bool { return r.OrderID == orderID }), nil
}

// ListByStatus returns stored refunds currently in the status.
func (s *RefundRepositoryStub) ListByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error) {
	if s.ListByStatusFn != nil {
		return s.ListByStatusFn(ctx, status)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.collect(func(r *model.Refund) bool { return r.Status == status }), nil
}

// Update applies non-nil fields of the partial update.
func (s *RefundRepositoryStub) Update(ctx context.Context, id int64, update repository.RefundUpdate) (*model.Refund, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	refund, ok := s.Refunds[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Reason != nil {
		refund.Reason = *update.Reason
	}
	if update.Amount != nil {
		refund.Amount = *update.Amount
	}
	if update.Status != nil {
		refund.Status = *update.Status
	}
	refund.UpdatedAt = time.Now()
	copied := *refund
	return &copied, nil
}

// SetStatus performs a status-only update.
func (s *RefundRepositoryStub) SetStatus(ctx context.Context, id int64, status model.RefundStatus) (*model.Refund, error) {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, id, status)
	}
	return s.Update(ctx, id, repository.RefundUpdate{Status: &status})
}

// Delete removes the record, reporting whether anything was deleted.
func (s *RefundRepositoryStub) Delete(ctx context.Context, id int64) (bool, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if s.Err != nil {
		return false, s.Err
	}
	if _, ok := s.Refunds[id]; !ok {
		return false, nil
	}
	delete(s.Refunds, id)
	return true, nil
}

// TotalByOrder sums stored amounts for the order across all statuses.
func (s *RefundRepositoryStub) TotalByOrder(ctx context.Context, orderID int64) (float64, error) {
	if s.TotalFn != nil {
		return s.TotalFn(ctx, orderID)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	var total float64
	for _, r := range s.Refunds {
		if r.OrderID == orderID {
			total += r.Amount
		}
	}
	return total, nil
}

func (s *RefundRepositoryStub) collect(match func(*model.Refund) bool) []model.Refund {
	ids := make([]int64, 0, len(s.Refunds))
	for id, r := range s.Refunds {
		if match(r) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	result := make([]model.Refund, 0, len(ids))
	for _, id := range ids {
		result = append(result, *s.Refunds[id])
	}
	return result
}

// OrderRepositoryStub keeps orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders map[int64]*model.Order
	Next   int64
	Err    error

	CreateFn  func(context.Context, float64) (*model.Order, error)
	GetByIDFn func(context.Context, int64) (*model.Order, error)
}

// NewOrderRepositoryStub constructs stub repository with initialized state.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order), Next: 1}
}

// Create registers an order with the next identifier.
func (s *OrderRepositoryStub) Create(ctx context.Context, total float64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, total)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	order := &model.Order{ID: s.Next, Total: total, CreatedAt: time.Now()}
	s.Next++
	s.Orders[order.ID] = order
	copied := *order
	return &copied, nil
}

// GetByID fetches an order copy or reports not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *order
	return &copied, nil
}

package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
)

// RefundUseCase encapsulates the refund lifecycle: creation, status
// transitions, partial issuance and per-order accounting. It keeps no state
// of its own; the repository is the single source of truth.
type RefundUseCase struct {
	refunds repository.RefundRepository
	orders  repository.OrderRepository
	logger  *slog.Logger

	now func() time.Time
}

// NewRefundUseCase constructs RefundUseCase.
func NewRefundUseCase(refunds repository.RefundRepository, orders repository.OrderRepository, logger *slog.Logger) *RefundUseCase {
	return &RefundUseCase{
		refunds: refunds,
		orders:  orders,
		logger:  logger,
		now:     time.Now,
	}
}

// Create persists a new refund request. The status defaults to PENDING when
// the caller leaves it empty; payload validation beyond the status spelling
// belongs to the transport layer and the store's own constraints.
func (u *RefundUseCase) Create(ctx context.Context, params repository.CreateRefundParams) (*model.Refund, error) {
	if params.Status == "" {
		params.Status = model.RefundStatusPending
	}
	if !params.Status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.refunds.Create(ctx, params)
}

// GetByID returns the refund or nil when no record matches.
func (u *RefundUseCase) GetByID(ctx context.Context, id int64) (*model.Refund, error) {
	refund, err := u.refunds.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return refund, nil
}

// ListByOrder returns all refunds recorded against the order.
func (u *RefundUseCase) ListByOrder(ctx context.Context, orderID int64) ([]model.Refund, error) {
	return u.refunds.ListByOrder(ctx, orderID)
}

// ListByStatus returns refunds currently in the given status.
func (u *RefundUseCase) ListByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.refunds.ListByStatus(ctx, status)
}

// Update applies an administrative field-level correction. It deliberately
// bypasses the transition table; lifecycle changes should go through Process.
func (u *RefundUseCase) Update(ctx context.Context, id int64, update repository.RefundUpdate) (*model.Refund, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.refunds.Update(ctx, id, update)
}

// Delete removes the refund record. A missing record or a store failure both
// report false; deletion is the one operation with local error recovery.
func (u *RefundUseCase) Delete(ctx context.Context, id int64) bool {
	deleted, err := u.refunds.Delete(ctx, id)
	if err != nil {
		u.logger.Warn("refund delete failed", slog.Int64("refund_id", id), slog.String("error", err.Error()))
		return false
	}
	return deleted
}

// Eligible reports whether the refund still falls inside the eligibility
// window counted from its order's creation time.
func (u *RefundUseCase) Eligible(ctx context.Context, refund *model.Refund, windowDays int) (bool, error) {
	order, err := u.orders.GetByID(ctx, refund.OrderID)
	if err != nil {
		return false, err
	}

	windowMs := int64(windowDays) * 24 * 60 * 60 * 1000
	elapsedMs := u.now().Sub(order.CreatedAt).Milliseconds()
	return elapsedMs <= windowMs, nil
}

// Process moves the refund into the given status. Moves not allowed by the
// transition table are rejected with ErrIllegalTransition.
func (u *RefundUseCase) Process(ctx context.Context, id int64, status model.RefundStatus) (*model.Refund, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	current, err := u.refunds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.Status, status) {
		return nil, domainErrors.ErrIllegalTransition
	}

	return u.refunds.SetStatus(ctx, id, status)
}

// Approve resolves a pending refund positively.
func (u *RefundUseCase) Approve(ctx context.Context, id int64) (*model.Refund, error) {
	return u.Process(ctx, id, model.RefundStatusApproved)
}

// Reject resolves a pending refund negatively.
func (u *RefundUseCase) Reject(ctx context.Context, id int64) (*model.Refund, error) {
	return u.Process(ctx, id, model.RefundStatusRejected)
}

// Cancel withdraws a pending refund request.
func (u *RefundUseCase) Cancel(ctx context.Context, id int64) (*model.Refund, error) {
	return u.Process(ctx, id, model.RefundStatusCancelled)
}

// IssuePartial overwrites the refund amount with the partial value. The
// stored amount is replaced, not decremented, and the status is untouched.
func (u *RefundUseCase) IssuePartial(ctx context.Context, id int64, amount float64) (*model.Refund, error) {
	if amount < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.refunds.Update(ctx, id, repository.RefundUpdate{Amount: &amount})
}

// TotalRefunded sums the amounts of every refund recorded against the order,
// regardless of status. Orders without refunds total zero.
func (u *RefundUseCase) TotalRefunded(ctx context.Context, orderID int64) (float64, error) {
	return u.refunds.TotalByOrder(ctx, orderID)
}

package app

import (
	"context"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
	pkgAuth "github.com/eshopcore/backoffice/internal/pkg/auth"
	"github.com/eshopcore/backoffice/internal/usecase"
)

type BackofficeFacade struct {
	refunds  *usecase.RefundUseCase
	orders   *usecase.OrderUseCase
	sessions *pkgAuth.SessionManager
}

func NewBackofficeFacade(refunds *usecase.RefundUseCase, orders *usecase.OrderUseCase, sessions *pkgAuth.SessionManager) *BackofficeFacade {
	return &BackofficeFacade{refunds: refunds, orders: orders, sessions: sessions}
}

func (f *BackofficeFacade) OpenSession(accessKey string) (string, error) {
	return f.sessions.Open(accessKey)
}

func (f *BackofficeFacade) ParseToken(token string) (string, error) {
	return f.sessions.Parse(token)
}

func (f *BackofficeFacade) RegisterOrder(ctx context.Context, total float64) (*model.Order, error) {
	return f.orders.Register(ctx, total)
}

func (f *BackofficeFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *BackofficeFacade) CreateRefund(ctx context.Context, params repository.CreateRefundParams) (*model.Refund, error) {
	return f.refunds.Create(ctx, params)
}

func (f *BackofficeFacade) Refund(ctx context.Context, id int64) (*model.Refund, error) {
	return f.refunds.GetByID(ctx, id)
}

func (f *BackofficeFacade) OrderRefunds(ctx context.Context, orderID int64) ([]model.Refund, error) {
	return f.refunds.ListByOrder(ctx, orderID)
}

func (f *BackofficeFacade) RefundsByStatus(ctx context.Context, status model.RefundStatus) ([]model.Refund, error) {
	return f.refunds.ListByStatus(ctx, status)
}

func (f *BackofficeFacade) UpdateRefund(ctx context.Context, id int64, update repository.RefundUpdate) (*model.Refund, error) {
	return f.refunds.Update(ctx, id, update)
}

func (f *BackofficeFacade) DeleteRefund(ctx context.Context, id int64) bool {
	return f.refunds.Delete(ctx, id)
}

func (f *BackofficeFacade) ProcessRefund(ctx context.Context, id int64, status model.RefundStatus) (*model.Refund, error) {
	return f.refunds.Process(ctx, id, status)
}

func (f *BackofficeFacade) ApproveRefund(ctx context.Context, id int64) (*model.Refund, error) {
	return f.refunds.Approve(ctx, id)
}

func (f *BackofficeFacade) RejectRefund(ctx context.Context, id int64) (*model.Refund, error) {
	return f.refunds.Reject(ctx, id)
}

func (f *BackofficeFacade) CancelRefund(ctx context.Context, id int64) (*model.Refund, error) {
	return f.refunds.Cancel(ctx, id)
}

func (f *BackofficeFacade) IssuePartialRefund(ctx context.Context, id int64, amount float64) (*model.Refund, error) {
	return f.refunds.IssuePartial(ctx, id, amount)
}

func (f *BackofficeFacade) RefundEligible(ctx context.Context, id int64, windowDays int) (bool, error) {
	refund, err := f.refunds.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if refund == nil {
		return false, domainErrors.ErrNotFound
	}
	return f.refunds.Eligible(ctx, refund, windowDays)
}

func (f *BackofficeFacade) TotalRefunded(ctx context.Context, orderID int64) (float64, error) {
	return f.refunds.TotalRefunded(ctx, orderID)
}

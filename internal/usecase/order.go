package usecase

import (
	"context"

	domainErrors "github.com/eshopcore/backoffice/internal/domain/errors"
	"github.com/eshopcore/backoffice/internal/domain/model"
	"github.com/eshopcore/backoffice/internal/domain/repository"
)

// OrderUseCase covers the thin slice of order management the back office
// needs: registering orders so refunds have something to attach to.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Register records a new order with the given total.
func (u *OrderUseCase) Register(ctx context.Context, total float64) (*model.Order, error) {
	if total < 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.orders.Create(ctx, total)
}

// Get fetches the order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

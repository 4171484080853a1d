package repository

import (
	"context"

	"github.com/eshopcore/backoffice/internal/domain/model"
)

// OrderRepository describes the order lookups the refund engine relies on.
type OrderRepository interface {
	Create(ctx context.Context, total float64) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
}

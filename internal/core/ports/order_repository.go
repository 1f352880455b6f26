package ports

import (
	"context"

	"logistics/internal/core/domain/model/order"
)

// OrderRepository is the order store, keyed for lookups by order number.
type OrderRepository interface {
	// Add persists a new order. A taken order number yields errs.AlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByOrderNumber returns errs.ObjectNotFoundError when the order does not exist.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error)

	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}

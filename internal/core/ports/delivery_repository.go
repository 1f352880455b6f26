package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
)

type DeliveryRepository interface {
	// Add persists a delivery. A second delivery for the same order number yields
	// errs.AlreadyExistsError.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}

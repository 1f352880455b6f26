// Package deliveryrepo persists Delivery aggregates. The unique index on order_number
// is what guarantees at most one delivery per order.
package deliveryrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"

	"github.com/google/uuid"
)

type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"not null;uniqueIndex:ux_deliveries_order_number"`
	DeliveredAt time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		DeliveredAt: aggregate.DeliveredAt(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// Package orderrepo maps Order aggregates to the orders table. The delivery address is
// embedded in the same row with an address_ column prefix.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row shape of an order. Status is stored as the order.Status number.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber string          `gorm:"not null;uniqueIndex:ux_orders_order_number"`
	Description string          `gorm:"not null"`
	Value       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Address     AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Status      int             `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null;index:ix_orders_created_at,sort:desc"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	PostalCode string `gorm:"not null"`
	Street     string `gorm:"not null"`
	Number     string `gorm:"not null"`
	District   string `gorm:"not null"`
	City       string `gorm:"not null"`
	State      string `gorm:"not null"`
}

func fromDomain(aggregate *order.Order) OrderDTO {
	addr := aggregate.Address()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		Description: aggregate.Description(),
		Value:       aggregate.Value(),
		Address: AddressDTO{
			PostalCode: addr.PostalCode(),
			Street:     addr.Street(),
			Number:     addr.Number(),
			District:   addr.District(),
			City:       addr.City(),
			State:      addr.State(),
		},
		Status:    int(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(
		dto.Address.PostalCode,
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.District,
		dto.Address.City,
		dto.Address.State,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.Description,
		dto.Value,
		addr,
		order.Status(dto.Status),
		dto.CreatedAt.UTC(),
	)
}

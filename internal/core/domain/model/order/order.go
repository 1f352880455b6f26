package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a delivery order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Order number is trimmed, non-empty and unique across orders (uniqueness is
//     enforced by the order store)
//   - Description is trimmed and non-empty
//   - Value is greater than zero, has at most two decimal places and does not
//     exceed MaxValue
//   - Address is a constructed kernel.Address
//   - Status moves from Created to Delivered exactly once
type Order struct {
	id          kernel.UUID
	orderNumber string
	description string
	value       decimal.Decimal
	address     kernel.Address
	status      Status
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates an order in Created status, stamped with the current UTC time.
// All validation errors are reported together.
//
//	addr, _ := kernel.NewAddress("01001000", "Praça da Sé", "10", "Sé", "São Paulo", "SP")
//	o, err := order.NewOrder(kernel.NewUUID(), "PED-1", "Notebook", decimal.RequireFromString("10.50"), addr)
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	description string,
	value decimal.Decimal,
	address kernel.Address,
) (*Order, error) {
	order := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setDescription(description),
		order.setValue(value),
		order.setAddress(address),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order loaded from storage, applying the same checks
// as NewOrder plus status validation.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	description string,
	value decimal.Decimal,
	address kernel.Address,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setDescription(description),
		order.setValue(value),
		order.setAddress(address),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) OrderNumber() string {
	return o.orderNumber
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) Value() decimal.Decimal {
	return o.value
}

func (o *Order) Address() kernel.Address {
	return o.address
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkDelivered moves the order from Created to Delivered.
// It returns ErrOrderAlreadyDelivered when the order was delivered before.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return fmt.Errorf("order %s: %w", o.orderNumber, err)
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setValue(value decimal.Decimal) error {
	if err := ValidateValue(value); err != nil {
		return err
	}
	o.value = value
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// Package delivery holds the Delivery aggregate: the record that an order reached
// its destination. There is at most one delivery per order number.
package delivery

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

type Delivery struct {
	id          kernel.UUID
	orderNumber string
	deliveredAt time.Time
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewDelivery records a delivery for orderNumber. A zero deliveredAt means "now".
func NewDelivery(orderNumber string, deliveredAt time.Time) (*Delivery, error) {
	now := time.Now().UTC()
	if deliveredAt.IsZero() {
		deliveredAt = now
	}
	return RestoreDelivery(kernel.NewUUID(), orderNumber, deliveredAt.UTC(), now)
}

func RestoreDelivery(id kernel.UUID, orderNumber string, deliveredAt, createdAt time.Time) (*Delivery, error) {
	d := &Delivery{
		deliveredAt: deliveredAt,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setID(id), d.setOrderNumber(orderNumber)); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) OrderNumber() string {
	return d.orderNumber
}

func (d *Delivery) DeliveredAt() time.Time {
	return d.deliveredAt
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderNumber(orderNumber string) error {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	d.orderNumber = orderNumber
	return nil
}

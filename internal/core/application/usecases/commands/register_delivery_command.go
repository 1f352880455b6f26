package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterDeliveryCommandIsNotConstructed = errors.New(
	"RegisterDeliveryCommand must be created via NewRegisterDeliveryCommand constructor",
)

// RegisterDeliveryCommand marks an order as delivered. A zero deliveredAt means the
// delivery happened now.
type RegisterDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber string
	deliveredAt time.Time
	actorUserID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRegisterDeliveryCommand(
	orderNumber string,
	deliveredAt time.Time,
	actorUserID kernel.UUID,
) (RegisterDeliveryCommand, error) {
	cmd := RegisterDeliveryCommand{
		deliveredAt: deliveredAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredText(&cmd.orderNumber, "orderNumber", orderNumber),
		cmd.setActorUserID(actorUserID),
	); err != nil {
		return RegisterDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c RegisterDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDeliveryCommandIsNotConstructed)
}

func (c RegisterDeliveryCommand) OrderNumber() string {
	return c.orderNumber
}

func (c RegisterDeliveryCommand) DeliveredAt() time.Time {
	return c.deliveredAt
}

func (c RegisterDeliveryCommand) ActorUserID() kernel.UUID {
	return c.actorUserID
}

func (c *RegisterDeliveryCommand) setActorUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorUserId", err)
	}
	c.actorUserID = id
	return nil
}

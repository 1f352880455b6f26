package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a delivery order. The street,
// district, city and state are not part of it: they come from the postal-code lookup.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("PED-1", "Notebook", decimal.RequireFromString("10.50"),
//	    "01001-000", "10", actorID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderNumber   string
	description   string
	value         decimal.Decimal
	postalCode    string
	addressNumber string
	actorUserID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand trims the text fields and reports every invalid field at once.
func NewCreateOrderCommand(
	orderNumber string,
	description string,
	value decimal.Decimal,
	postalCode string,
	addressNumber string,
	actorUserID kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requiredText(&cmd.orderNumber, "orderNumber", orderNumber),
		requiredText(&cmd.description, "description", description),
		cmd.setValue(value),
		requiredText(&cmd.postalCode, "postalCode", postalCode),
		requiredText(&cmd.addressNumber, "addressNumber", addressNumber),
		cmd.setActorUserID(actorUserID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

func (c CreateOrderCommand) Description() string {
	return c.description
}

func (c CreateOrderCommand) Value() decimal.Decimal {
	return c.value
}

func (c CreateOrderCommand) PostalCode() string {
	return c.postalCode
}

func (c CreateOrderCommand) AddressNumber() string {
	return c.addressNumber
}

func (c CreateOrderCommand) ActorUserID() kernel.UUID {
	return c.actorUserID
}

func (c *CreateOrderCommand) setValue(value decimal.Decimal) error {
	if err := order.ValidateValue(value); err != nil {
		return err
	}
	c.value = value
	return nil
}

func (c *CreateOrderCommand) setActorUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorUserId", err)
	}
	c.actorUserID = id
	return nil
}

func requiredText(dst *string, paramName, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*dst = value
	return nil
}

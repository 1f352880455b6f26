package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateNotificationCommandIsNotConstructed = errors.New(
	"CreateNotificationCommand must be created via NewCreateNotificationCommand constructor",
)

type CreateNotificationCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	message string

	guard guard.ConstructorGuard
}

func NewCreateNotificationCommand(userID kernel.UUID, message string) (CreateNotificationCommand, error) {
	cmd := CreateNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setUserID(userID), cmd.setMessage(message)); err != nil {
		return CreateNotificationCommand{}, err
	}

	return cmd, nil
}

func (c CreateNotificationCommand) Validate() error {
	return c.guard.Validate(ErrCreateNotificationCommandIsNotConstructed)
}

func (c CreateNotificationCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateNotificationCommand) Message() string {
	return c.message
}

func (c *CreateNotificationCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = userID
	return nil
}

func (c *CreateNotificationCommand) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	c.message = message
	return nil
}

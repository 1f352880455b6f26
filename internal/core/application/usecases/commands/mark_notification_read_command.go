package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand keeps the notification id as the caller sent it. An id
// that is not a UUID cannot match anything and is handled as a miss, not rejected.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID string
	userID         kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(notificationID string, userID kernel.UUID) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setNotificationID(notificationID), cmd.setUserID(userID)); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return cmd, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) NotificationID() string {
	return c.notificationID
}

func (c MarkNotificationReadCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *MarkNotificationReadCommand) setNotificationID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("notificationId")
	}
	c.notificationID = id
	return nil
}

func (c *MarkNotificationReadCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = userID
	return nil
}

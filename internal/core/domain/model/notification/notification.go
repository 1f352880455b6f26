// Package notification holds the per-user Notification aggregate.
package notification

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification constructor")

// Notification is a message addressed to one user. It starts unread; MarkRead is
// the only mutation and it never flips back.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	message   string
	isRead    bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewNotification(userID kernel.UUID, message string) (*Notification, error) {
	return RestoreNotification(kernel.NewUUID(), userID, message, false, time.Now().UTC())
}

func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	message string,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		isRead:    isRead,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setMessage(message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead is idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	n.userID = userID
	return nil
}

func (n *Notification) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

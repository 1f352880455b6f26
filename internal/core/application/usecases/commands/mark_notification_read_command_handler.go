package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// MarkNotificationReadCommandHandler flags a notification as read for its owner.
// Marking someone else's notification, an unknown one, or one already read
// succeeds without changing anything.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	id, err := kernel.UUIDFromString(cmd.NotificationID())
	if err != nil {
		return nil //nolint:nilerr // no notification can carry this id
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().MarkRead(ctx, id, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

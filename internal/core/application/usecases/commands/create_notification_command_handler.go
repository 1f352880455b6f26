package commands

import (
	"context"

	"logistics/internal/core/domain/model/notification"
)

type CreateNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewCreateNotificationCommandHandler(uowFactory NotificationUoWFactory) CreateNotificationCommandHandler {
	return CreateNotificationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores an unread notification and returns it.
func (h *CreateNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateNotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	n, err := notification.NewNotification(cmd.UserID(), cmd.Message())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return n, nil
}

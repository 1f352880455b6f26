package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"
)

type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error

	// MarkRead flags the notification owned by userID as read. Nothing happens when no
	// notification matches both id and owner.
	MarkRead(ctx context.Context, id kernel.UUID, userID kernel.UUID) error
}

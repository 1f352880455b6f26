package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMyNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListMyNotificationsQueryHandler(db *gorm.DB) ListMyNotificationsQueryHandler {
	return ListMyNotificationsQueryHandler{db: db}
}

func (h ListMyNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListMyNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]NotificationView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			message,
			is_read,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var view NotificationView
		var id uuid.UUID

		if err = rows.Scan(&id, &view.Message, &view.IsRead, &view.CreatedAt); err != nil {
			return nil, err
		}

		view.ID = id.String()
		view.CreatedAt = view.CreatedAt.UTC()
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

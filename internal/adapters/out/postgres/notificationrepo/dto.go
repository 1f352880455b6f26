// Package notificationrepo persists the per-user notification feed.
package notificationrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO is indexed on (user_id, created_at desc) for the newest-first feed.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:ix_notifications_user_created,priority:1"`
	Message   string    `gorm:"not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;index:ix_notifications_user_created,priority:2,sort:desc"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Message:   aggregate.Message(),
		IsRead:    aggregate.IsRead(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, userID, dto.Message, dto.IsRead, dto.CreatedAt.UTC())
}

// Package commands contains the workflows that change state: registering and signing
// in users, creating orders, registering deliveries and managing notifications.
// Every command is built through a guarded constructor and executed by its handler
// inside a unit of work.
package commands

import (
	"context"

	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/ports"
)

// Unit of Work views narrowed to the repositories each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW spans orders and deliveries: the status change and the delivery
	// record commit together.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// NotificationCreator is how order and delivery workflows leave a message for the
// acting user. CreateNotificationCommandHandler implements it.
type NotificationCreator interface {
	Handle(ctx context.Context, cmd CreateNotificationCommand) (*notification.Notification, error)
}

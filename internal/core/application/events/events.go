// Package events defines the realtime payloads workflows hand to the EventPublisher.
// Every event serializes to a JSON object carrying a "type" discriminator.
package events

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/notification"
	"logistics/internal/core/domain/model/order"
)

type Type string

const (
	OrderCreated       Type = "ORDER_CREATED"
	DeliveryRegistered Type = "DELIVERY_REGISTERED"
	Notification       Type = "NOTIFICATION"
)

// OrderCreatedEvent is broadcast to every client once an order is stored.
type OrderCreatedEvent struct {
	Type        Type      `json:"type"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewOrderCreated(o *order.Order) OrderCreatedEvent {
	return OrderCreatedEvent{
		Type:        OrderCreated,
		OrderNumber: o.OrderNumber(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
}

// DeliveryRegisteredEvent is broadcast to every client once an order is delivered.
type DeliveryRegisteredEvent struct {
	Type        Type      `json:"type"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	DeliveredAt time.Time `json:"deliveredAt"`
}

func NewDeliveryRegistered(o *order.Order, d *delivery.Delivery) DeliveryRegisteredEvent {
	return DeliveryRegisteredEvent{
		Type:        DeliveryRegistered,
		OrderNumber: d.OrderNumber(),
		Status:      o.Status().String(),
		DeliveredAt: d.DeliveredAt(),
	}
}

// NotificationEvent is sent only to the owner of the notification.
type NotificationEvent struct {
	Type           Type      `json:"type"`
	NotificationID string    `json:"notificationId"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewNotification(n *notification.Notification) NotificationEvent {
	return NotificationEvent{
		Type:           Notification,
		NotificationID: n.ID().String(),
		Message:        n.Message(),
		CreatedAt:      n.CreatedAt(),
	}
}

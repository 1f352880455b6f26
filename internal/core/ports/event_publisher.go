package ports

import (
	"context"
)

// EventPublisher pushes realtime events to connected clients. Payloads are serialized
// as JSON by the implementation.
type EventPublisher interface {
	// PublishToAll sends the event to every connected client.
	PublishToAll(ctx context.Context, event any) error

	// PublishToUser sends the event only to the connections of userID.
	PublishToUser(ctx context.Context, userID string, event any) error
}

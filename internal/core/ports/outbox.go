package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a domain event serialised for delivery outside the service.
type OutboxMessage struct {
	ID         uuid.UUID
	EventName  string
	Payload    []byte
	OccurredAt time.Time
}

// OutboxRepository reads and acknowledges messages written by committed units of work.
type OutboxRepository interface {
	// GetUnpublished returns up to limit unpublished messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished flags messages as delivered.
	MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// MessageBus delivers outbox messages to other services.
type MessageBus interface {
	Publish(ctx context.Context, message OutboxMessage) error
}

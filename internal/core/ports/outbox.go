package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a domain event persisted in the same transaction as the change that raised it.
type OutboxMessage struct {
	ID        int64
	EventID   uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository gives the relay access to events that were committed but not yet published.
type OutboxRepository interface {
	// GetPending returns up to limit unsent messages, oldest first, locking them so that
	// two relays never publish the same batch.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent stamps the given messages as published.
	MarkSent(ctx context.Context, ids []int64, at time.Time) error
}

// EventPublisher delivers outbox messages to a message broker.
// Delivery is at-least-once: a message may be published again if MarkSent fails afterwards.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
	Close() error
}

// BatchPublisher is implemented by publishers that can deliver a whole batch in one round trip.
// PublishBatch returns how many leading messages were delivered before the first failure.
type BatchPublisher interface {
	PublishBatch(ctx context.Context, messages []OutboxMessage) (int, error)
}

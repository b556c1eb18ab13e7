package commands

import (
	"context"
	"fmt"
	"time"

	"foodorder/internal/core/ports"
)

// RelayOutboxCommandHandler moves committed domain events from the outbox to the broker.
//
// The pending batch stays locked for the whole run, so relays on other instances skip it.
// Messages are published in outbox order, as one batch when the publisher supports it.
// The first publish failure stops the batch and only the messages already published
// are marked sent. Delivery is at-least-once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle returns the number of messages marked sent.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	pending, err := outboxRepo.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	delivered, publishErr := h.publish(ctx, pending)
	sent := make([]int64, 0, delivered)
	for _, message := range pending[:delivered] {
		sent = append(sent, message.ID)
	}

	if len(sent) > 0 {
		if err = outboxRepo.MarkSent(ctx, sent, time.Now()); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(sent), publishErr
}

func (h RelayOutboxCommandHandler) publish(ctx context.Context, pending []ports.OutboxMessage) (int, error) {
	if batcher, ok := h.publisher.(ports.BatchPublisher); ok {
		delivered, err := batcher.PublishBatch(ctx, pending)
		delivered = min(max(delivered, 0), len(pending))
		if err != nil {
			return delivered, fmt.Errorf("publish outbox batch of %d: %w", len(pending), err)
		}
		return len(pending), nil
	}

	for i, message := range pending {
		if err := h.publisher.Publish(ctx, message); err != nil {
			return i, fmt.Errorf("publish outbox message %d: %w", message.ID, err)
		}
	}
	return len(pending), nil
}

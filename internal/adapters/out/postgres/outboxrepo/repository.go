package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"foodorder/internal/adapters/out/postgres/pgerrs"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/ddd"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// AddEvents serialises events into outbox rows. Must run inside the transaction
// that persisted the aggregate raising them.
func (r *GormOutboxRepository) AddEvents(ctx context.Context, events []ddd.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]OutboxDTO, 0, len(events))
	for _, event := range events {
		message, err := NewMessage(event)
		if err != nil {
			return err
		}
		dtos = append(dtos, fromMessage(message))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return pgerrs.Classify(err)
	}
	return nil
}

// GetPending skips rows locked by another relay instead of waiting for them.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, pgerrs.Classify(err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toMessage(dto))
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkSent(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Model(&OutboxDTO{}).
		Where("id IN ?", ids).
		Update("sent_at", at.UTC()).Error
	return pgerrs.Classify(err)
}

// NewMessage builds the outbox representation of a domain event.
// The event name doubles as the routing topic and the aggregate id as the partition key.
func NewMessage(event ddd.DomainEvent) (ports.OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return ports.OutboxMessage{}, fmt.Errorf("encode %s: %w", event.EventName(), err)
	}

	return ports.OutboxMessage{
		EventID:   event.EventID(),
		Topic:     event.EventName(),
		Key:       event.AggregateID(),
		Payload:   payload,
		CreatedAt: event.OccurredAt(),
	}, nil
}

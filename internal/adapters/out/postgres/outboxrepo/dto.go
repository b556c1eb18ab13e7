package outboxrepo

import (
	"time"

	"foodorder/internal/core/ports"

	"github.com/google/uuid"
)

type OutboxDTO struct {
	ID        int64      `gorm:"primaryKey"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Topic     string     `gorm:"size:128;not null"`
	Key       string     `gorm:"size:128;not null"`
	Payload   []byte     `gorm:"type:jsonb;not null"`
	CreatedAt time.Time  `gorm:"not null"`
	SentAt    *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

func fromMessage(m ports.OutboxMessage) OutboxDTO {
	return OutboxDTO{
		EventID:   m.EventID,
		Topic:     m.Topic,
		Key:       m.Key,
		Payload:   m.Payload,
		CreatedAt: m.CreatedAt,
	}
}

func toMessage(dto OutboxDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:        dto.ID,
		EventID:   dto.EventID,
		Topic:     dto.Topic,
		Key:       dto.Key,
		Payload:   dto.Payload,
		CreatedAt: dto.CreatedAt,
	}
}

// Package outboxrepo is the PostgreSQL transactional outbox.
package outboxrepo

import (
	"time"

	"seomarket/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is a row of the outbox table. SentAt is nil until the relay has
// delivered the message.
type MessageDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	EventID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Topic      string     `gorm:"type:varchar(255);not null"`
	MessageKey string     `gorm:"type:varchar(255);not null;default:''"`
	Payload    string     `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time  `gorm:"type:timestamptz;not null"`
	SentAt     *time.Time `gorm:"type:timestamptz"`
}

func (MessageDTO) TableName() string {
	return "outbox"
}

func fromPort(msg ports.OutboxMessage, eventID uuid.UUID) MessageDTO {
	return MessageDTO{
		EventID:    eventID,
		Topic:      msg.Topic,
		MessageKey: msg.Key,
		Payload:    string(msg.Payload),
		CreatedAt:  msg.CreatedAt,
	}
}

func toPort(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:        dto.ID,
		EventID:   dto.EventID.String(),
		Topic:     dto.Topic,
		Key:       dto.MessageKey,
		Payload:   []byte(dto.Payload),
		CreatedAt: dto.CreatedAt,
	}
}

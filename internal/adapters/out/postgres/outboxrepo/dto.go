// Package outboxrepo stores domain events until they are published.
package outboxrepo

import (
	"time"

	"github.com/google/uuid"

	"kitchenpos/internal/core/ports"
)

// MessageDTO is one outbox row. PublishedAt stays NULL until the relay delivers it.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventName   string     `gorm:"type:varchar(64);not null"`
	Payload     []byte     `gorm:"not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox"
}

func toPort(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:         dto.ID,
		EventName:  dto.EventName,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt.UTC(),
	}
}

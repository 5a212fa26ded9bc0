package outboxrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/pkg/ddd"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Append serializes events as JSON and stores them as unpublished messages.
func (r *GormOutboxRepository) Append(ctx context.Context, events []ddd.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(events))
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal %s event: %w", e.EventName(), err)
		}
		dtos = append(dtos, MessageDTO{
			ID:         e.EventID(),
			EventName:  e.EventName(),
			Payload:    payload,
			OccurredAt: e.OccurredAt(),
		})
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetUnpublished returns up to limit messages, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		messages = append(messages, toPort(dto))
	}

	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at).Error
}

package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kitchenpos/internal/core/ports"
)

// PublishOutboxMessagesCommandHandler delivers committed domain events.
//
// Messages are published oldest first. When publishing fails, the messages
// already sent are still marked as published and the rest stay in the outbox
// for the next run, so delivery is at least once.
type PublishOutboxMessagesCommandHandler struct {
	uowFactory OutboxUoWFactory
	bus        ports.MessageBus
}

func NewPublishOutboxMessagesCommandHandler(
	uowFactory OutboxUoWFactory,
	bus ports.MessageBus,
) PublishOutboxMessagesCommandHandler {
	return PublishOutboxMessagesCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle returns the number of messages published.
func (h PublishOutboxMessagesCommandHandler) Handle(
	ctx context.Context,
	cmd PublishOutboxMessagesCommand,
) (int, error) {
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

	messages, err := outboxRepo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]uuid.UUID, 0, len(messages))
	var publishErr error
	for _, msg := range messages {
		if publishErr = h.bus.Publish(ctx, msg); publishErr != nil {
			publishErr = fmt.Errorf("publish %s %s: %w", msg.EventName, msg.ID, publishErr)
			break
		}
		published = append(published, msg.ID)
	}

	if len(published) > 0 {
		if err = outboxRepo.MarkPublished(ctx, published, time.Now().UTC()); err != nil {
			return 0, err
		}
		if err = uow.Commit(ctx); err != nil {
			return 0, err
		}
	}

	return len(published), publishErr
}

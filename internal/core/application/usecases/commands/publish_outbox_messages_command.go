package commands

import (
	"errors"

	"kitchenpos/internal/pkg/errs"
	"kitchenpos/internal/pkg/guard"
)

var ErrPublishOutboxMessagesCommandIsNotConstructed = errors.New(
	"PublishOutboxMessagesCommand must be created via NewPublishOutboxMessagesCommand constructor",
)

// PublishOutboxMessagesCommand relays one batch of outbox messages to the message bus.
type PublishOutboxMessagesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxMessagesCommand(batchSize int) (PublishOutboxMessagesCommand, error) {
	if batchSize <= 0 {
		return PublishOutboxMessagesCommand{}, errs.NewValueIsOutOfRangeError("batch size", batchSize, 1, "unbounded")
	}

	return PublishOutboxMessagesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxMessagesCommand) Validate() error {
	return c.guard.Validate(ErrPublishOutboxMessagesCommandIsNotConstructed)
}

func (c PublishOutboxMessagesCommand) BatchSize() int {
	return c.batchSize
}

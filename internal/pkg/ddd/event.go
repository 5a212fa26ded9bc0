// Package ddd holds the building blocks shared by all aggregates: domain events
// and the event buffer an aggregate root carries until its unit of work commits.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is something that happened to an aggregate and that other parts of
// the system may want to react to. Events are serialised to JSON when they are
// written to the outbox, so implementations should keep their payload exported.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	OccurredAt() time.Time
}

// BaseEvent carries the metadata common to every event. Concrete events embed it.
type BaseEvent struct {
	ID       uuid.UUID `json:"event_id"`
	Name     string    `json:"event_name"`
	Occurred time.Time `json:"occurred_at"`
}

// NewBaseEvent stamps a new event with a random identifier.
func NewBaseEvent(name string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		ID:       uuid.New(),
		Name:     name,
		Occurred: occurredAt.UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID {
	return e.ID
}

func (e BaseEvent) EventName() string {
	return e.Name
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.Occurred
}

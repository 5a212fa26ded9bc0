package ddd

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// AggregateRoot buffers the events raised by an aggregate. Embed it by value.
type AggregateRoot struct {
	events []DomainEvent
}

// RaiseDomainEvent appends an event to the buffer.
func (a *AggregateRoot) RaiseDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

// DomainEvents returns a copy of the buffered events in the order they were raised.
func (a *AggregateRoot) DomainEvents() []DomainEvent {
	out := make([]DomainEvent, len(a.events))
	copy(out, a.events)
	return out
}

// ClearDomainEvents empties the buffer.
func (a *AggregateRoot) ClearDomainEvents() {
	a.events = nil
}

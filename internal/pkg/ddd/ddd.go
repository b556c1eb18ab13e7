// Package ddd contains the minimal building blocks aggregates use to publish domain events.
// Events raised on an aggregate are collected by the unit of work on commit and written to
// the outbox inside the same transaction.
package ddd

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is a fact that happened to an aggregate.
type DomainEvent interface {
	EventID() uuid.UUID
	EventName() string
	AggregateID() string
	OccurredAt() time.Time
}

// BaseEvent carries the envelope fields shared by all events.
// Concrete events embed it and add their payload fields.
type BaseEvent struct {
	ID        uuid.UUID `json:"event_id"`
	Name      string    `json:"event_name"`
	Aggregate string    `json:"aggregate_id"`
	At        time.Time `json:"occurred_at"`
}

func NewBaseEvent(name, aggregateID string, at time.Time) BaseEvent {
	return BaseEvent{
		ID:        uuid.New(),
		Name:      name,
		Aggregate: aggregateID,
		At:        at.UTC(),
	}
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) EventName() string     { return e.Name }
func (e BaseEvent) AggregateID() string   { return e.Aggregate }
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// AggregateRoot records events until the unit of work drains them.
type AggregateRoot struct {
	events []DomainEvent
}

func (a *AggregateRoot) RaiseDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
}

func (a *AggregateRoot) DomainEvents() []DomainEvent {
	return a.events
}

func (a *AggregateRoot) ClearDomainEvents() {
	a.events = nil
}

// EventSource is implemented by every aggregate embedding AggregateRoot.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

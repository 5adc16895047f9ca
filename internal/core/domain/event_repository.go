package domain

import "context"

// EventRepository is the abstraction for the append-only ordered event log.
type EventRepository interface {
	// AddEvent appends an event to the log, assigning it the next sequence
	// number.
	AddEvent(ctx context.Context, event Event) (Event, error)
	// GetAllEvents returns the whole log in sequence order.
	GetAllEvents(ctx context.Context) ([]Event, error)
	// GetEventsForOption returns the log entries related to an option, in
	// sequence order.
	GetEventsForOption(ctx context.Context, optionId uint64) ([]Event, error)
}

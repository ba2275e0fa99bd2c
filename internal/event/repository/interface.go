package repository

import (
	"context"

	"ai-calendar-assistant/internal/event"
)

// Repository is the composed interface for the event domain data store.
type Repository interface {
	EventRepository
}

// EventRepository defines all data access methods for the Event entity.
// Every operation returns the canonical row as stored, or a repository error
// carrying the underlying transport failure.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (event.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (event.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]event.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (event.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

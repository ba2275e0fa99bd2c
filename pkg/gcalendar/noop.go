package gcalendar

import "context"

// Noop satisfies Mirror without talking to any calendar service: lists are
// empty and mutations echo their inputs. Used when no Google credentials are
// configured.
type Noop struct{}

var _ Mirror = Noop{}

func (Noop) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	return nil, nil
}

func (Noop) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	return &Event{
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}, nil
}

func (Noop) UpdateEvent(ctx context.Context, req UpdateEventRequest) (*Event, error) {
	return &Event{
		ID:          req.EventID,
		Summary:     req.Summary,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}, nil
}

func (Noop) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	return nil
}

package event

import "time"

// DefaultColor is applied when a draft carries no color tag.
const DefaultColor = "bg-blue-500"

// Event is the calendar entry domain model. The displayed calendar date is
// always derived from StartTime in the service timezone; it is never stored
// separately.
type Event struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	Location      string
	Color         string
	MirrorEventID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// --- UseCase Inputs ---

// CreateEventInput is a draft for a new event. Either Date (YYYY-MM-DD,
// expanded to [local midnight, +24h)) or an explicit StartTime is required.
type CreateEventInput struct {
	UserID      string
	Title       string
	Description string
	Date        string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Color       string
}

// ListEventsInput filters the authenticated user's events. Date selects an
// exact local calendar day; Month (YYYY-MM) selects the visible-month window.
type ListEventsInput struct {
	UserID string
	Date   string
	Month  string
}

// UpdateEventInput carries a partial draft: zero-value fields are left
// untouched both locally and remotely. A supplied Date re-dates the event
// keeping its duration.
type UpdateEventInput struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Date        string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Color       string
}

// --- UseCase Outputs ---

type CreateEventOutput struct {
	Event Event
}

type ListEventsOutput struct {
	Events []Event
	Total  int
}

type DetailEventOutput struct {
	Event Event
}

type UpdateEventOutput struct {
	Event Event
}

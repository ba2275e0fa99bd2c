package repository

import "time"

// CreateEventOptions holds parameters for inserting a new event row.
type CreateEventOptions struct {
	UserID        string
	Title         string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	Location      string
	Color         string
	MirrorEventID string
}

// GetOneEventOptions holds filter parameters for fetching a single event.
// All non-empty fields are applied as AND conditions.
type GetOneEventOptions struct {
	ID     string
	UserID string
}

// ListEventsOptions holds filter parameters for listing events, ordered by
// start time ascending. StartFrom/StartTo bound the [from, to) window when
// non-zero.
type ListEventsOptions struct {
	UserID    string
	StartFrom time.Time
	StartTo   time.Time
}

// UpdateEventOptions holds the full post-merge field set for an update.
// The use case resolves partial drafts before calling the repository.
type UpdateEventOptions struct {
	ID            string
	Title         string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	Location      string
	Color         string
	MirrorEventID string
}

package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"ai-calendar-assistant/internal/event"
	repo "ai-calendar-assistant/internal/event/repository"
)

const eventColumns = `id, user_id, title, COALESCE(description, ''), start_time, end_time,
	COALESCE(location, ''), COALESCE(color, ''), COALESCE(mirror_event_id, ''), created_at, updated_at`

// CreateEvent inserts a new event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (event.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO calendar_events (user_id, title, description, start_time, end_time, location, color, mirror_event_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s`, eventColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.Title, opt.Description, opt.StartTime, opt.EndTime,
		opt.Location, opt.Color, opt.MirrorEventID,
	)

	evt, err := r.scanEvent(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return event.Event{}, repo.ErrFailedToInsert
	}
	return evt, nil
}

// GetOneEvent retrieves a single event by the provided filters (AND condition).
// Returns zero-value Event (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (event.Event, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM calendar_events WHERE %s LIMIT 1", eventColumns, mods)

	evt, err := r.scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return event.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return event.Event{}, repo.ErrFailedToGet
	}
	return evt, nil
}

// ListEvents returns the matching events ordered by start time ascending.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]event.Event, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM calendar_events WHERE %s ORDER BY start_time ASC", eventColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		evt, scanErr := r.scanEvent(rows)
		if scanErr != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), scanErr)
			return nil, repo.ErrFailedToList
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// UpdateEvent overwrites the row with the post-merge field set and returns
// the canonical stored row.
func (r *implRepository) UpdateEvent(ctx context.Context, opt repo.UpdateEventOptions) (event.Event, error) {
	query := fmt.Sprintf(`
		UPDATE calendar_events
		SET title = $2, description = $3, start_time = $4, end_time = $5,
		    location = $6, color = $7, mirror_event_id = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING %s`, eventColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.ID, opt.Title, opt.Description, opt.StartTime, opt.EndTime,
		opt.Location, opt.Color, opt.MirrorEventID,
	)

	evt, err := r.scanEvent(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEvent"), err)
		return event.Event{}, repo.ErrFailedToUpdate
	}
	return evt, nil
}

// DeleteEvent removes an event row by identifier.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM calendar_events WHERE id = $1", id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanEvent(row rowScanner) (event.Event, error) {
	var evt event.Event
	err := row.Scan(
		&evt.ID, &evt.UserID, &evt.Title, &evt.Description, &evt.StartTime, &evt.EndTime,
		&evt.Location, &evt.Color, &evt.MirrorEventID, &evt.CreatedAt, &evt.UpdatedAt,
	)
	return evt, err
}

package usecase

import (
	"context"
	"strings"
	"time"

	"ai-calendar-assistant/internal/event"
	repo "ai-calendar-assistant/internal/event/repository"
	"ai-calendar-assistant/pkg/gcalendar"
)

// Create validates a draft and persists it to the remote store. Local state
// is never mutated on failure: a rejected or failed create leaves the event
// list exactly as it was.
func (uc *implUseCase) Create(ctx context.Context, input event.CreateEventInput) (event.CreateEventOutput, error) {
	if input.UserID == "" {
		return event.CreateEventOutput{}, event.ErrUnauthenticated
	}
	if strings.TrimSpace(input.Title) == "" {
		return event.CreateEventOutput{}, event.ErrTitleRequired
	}

	start, end, err := uc.resolveWindow(input)
	if err != nil {
		return event.CreateEventOutput{}, err
	}

	// Past-date rejection is a validation condition, not a transport failure.
	if uc.cal.BeforeToday(start, time.Now()) {
		return event.CreateEventOutput{}, event.ErrPastDate
	}

	color := input.Color
	if color == "" {
		color = event.DefaultColor
	}

	created, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		UserID:      input.UserID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		StartTime:   start,
		EndTime:     end,
		Location:    input.Location,
		Color:       color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEvent: %v", err)
		return event.CreateEventOutput{}, err
	}

	// Mirror only once the store has accepted the row; a failed insert must
	// not leave an orphan remote event.
	if mirrorID := uc.mirrorCreate(ctx, input, start, end); mirrorID != "" {
		created = uc.persistMirrorID(ctx, created, mirrorID)
	}

	return event.CreateEventOutput{Event: created}, nil
}

// persistMirrorID stores the remote event ID on the freshly created row so
// later updates and deletes can reach the mirror. Failing to record it only
// degrades mirroring, so it warns instead of failing the create.
func (uc *implUseCase) persistMirrorID(ctx context.Context, created event.Event, mirrorID string) event.Event {
	updated, err := uc.repo.UpdateEvent(ctx, repo.UpdateEventOptions{
		ID:            created.ID,
		Title:         created.Title,
		Description:   created.Description,
		StartTime:     created.StartTime,
		EndTime:       created.EndTime,
		Location:      created.Location,
		Color:         created.Color,
		MirrorEventID: mirrorID,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create persist mirror event ID: %v", err)
		return created
	}
	return updated
}

// resolveWindow derives the [start, end) timestamps from a draft: an explicit
// start wins; a date-only draft expands to local midnight plus one day.
func (uc *implUseCase) resolveWindow(input event.CreateEventInput) (time.Time, time.Time, error) {
	if !input.StartTime.IsZero() {
		end := input.EndTime
		if end.IsZero() {
			end = input.StartTime.Add(time.Hour)
		}
		return input.StartTime, end, nil
	}

	if input.Date == "" {
		return time.Time{}, time.Time{}, event.ErrDateRequired
	}

	start, err := uc.cal.ParseDate(input.Date)
	if err != nil {
		return time.Time{}, time.Time{}, event.ErrInvalidDate
	}

	end := input.EndTime
	if end.IsZero() {
		end = uc.cal.NextDay(start)
	}
	return start, end, nil
}

// mirrorCreate pushes the draft to the hosted calendar. Mirroring is
// best-effort: a failure logs a warning and the store write proceeds.
func (uc *implUseCase) mirrorCreate(ctx context.Context, input event.CreateEventInput, start, end time.Time) string {
	mirrored, err := uc.mirror.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    input.Location,
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.cal.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create mirror CreateEvent: %v", err)
		return ""
	}
	return mirrored.ID
}

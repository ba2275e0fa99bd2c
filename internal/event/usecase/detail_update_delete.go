package usecase

import (
	"context"
	"strings"
	"time"

	"ai-calendar-assistant/internal/event"
	repo "ai-calendar-assistant/internal/event/repository"
	"ai-calendar-assistant/pkg/gcalendar"
)

// Detail retrieves a single event scoped to its owner. Returns
// ErrEventNotFound when no such event exists for the user.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (event.DetailEventOutput, error) {
	if userID == "" {
		return event.DetailEventOutput{}, event.ErrUnauthenticated
	}

	evt, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEvent: %v", err)
		return event.DetailEventOutput{}, err
	}
	if evt.ID == "" {
		return event.DetailEventOutput{}, event.ErrEventNotFound
	}
	return event.DetailEventOutput{Event: evt}, nil
}

// Update applies a partial draft: zero-value input fields keep the stored
// values. A supplied Date re-dates the event preserving its duration; a
// supplied title or date is validated the same way Create validates it.
func (uc *implUseCase) Update(ctx context.Context, input event.UpdateEventInput) (event.UpdateEventOutput, error) {
	if input.UserID == "" {
		return event.UpdateEventOutput{}, event.ErrUnauthenticated
	}

	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: input.ID, UserID: input.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}
	if existing.ID == "" {
		return event.UpdateEventOutput{}, event.ErrEventNotFound
	}

	if input.Title != "" && strings.TrimSpace(input.Title) == "" {
		return event.UpdateEventOutput{}, event.ErrTitleRequired
	}

	start, end, err := uc.mergeWindow(input, existing)
	if err != nil {
		return event.UpdateEventOutput{}, err
	}
	// Re-validate the date only when the event moves to a different day;
	// adjusting the clock time of an existing event never re-dates it.
	if !uc.cal.SameDay(start, existing.StartTime) && uc.cal.BeforeToday(start, time.Now()) {
		return event.UpdateEventOutput{}, event.ErrPastDate
	}

	opt := repo.UpdateEventOptions{
		ID:            existing.ID,
		Title:         uc.coalesce(strings.TrimSpace(input.Title), existing.Title),
		Description:   uc.coalesce(input.Description, existing.Description),
		StartTime:     start,
		EndTime:       end,
		Location:      uc.coalesce(input.Location, existing.Location),
		Color:         uc.coalesce(input.Color, existing.Color),
		MirrorEventID: existing.MirrorEventID,
	}

	updated, err := uc.repo.UpdateEvent(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateEvent: %v", err)
		return event.UpdateEventOutput{}, err
	}

	uc.mirrorUpdate(ctx, updated)

	return event.UpdateEventOutput{Event: updated}, nil
}

// Delete removes an event scoped to its owner. Local/mirror cleanup happens
// only after the remote store confirms the deletion.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return event.ErrUnauthenticated
	}

	existing, err := uc.repo.GetOneEvent(ctx, repo.GetOneEventOptions{ID: id, UserID: userID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneEvent: %v", err)
		return err
	}
	if existing.ID == "" {
		return event.ErrEventNotFound
	}

	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}

	if existing.MirrorEventID != "" {
		if err := uc.mirror.DeleteEvent(ctx, uc.calendarID, existing.MirrorEventID); err != nil {
			uc.l.Warnf(ctx, "uc.Delete mirror DeleteEvent: %v", err)
		}
	}
	return nil
}

// mergeWindow resolves the post-merge [start, end) timestamps for an update.
func (uc *implUseCase) mergeWindow(input event.UpdateEventInput, existing event.Event) (time.Time, time.Time, error) {
	start := existing.StartTime
	end := existing.EndTime

	switch {
	case !input.StartTime.IsZero():
		start = input.StartTime
		if input.EndTime.IsZero() {
			end = start.Add(existing.EndTime.Sub(existing.StartTime))
		}
	case input.Date != "":
		day, err := uc.cal.ParseDate(input.Date)
		if err != nil {
			return time.Time{}, time.Time{}, event.ErrInvalidDate
		}
		duration := existing.EndTime.Sub(existing.StartTime)
		// Keep the clock time, move the day.
		clock := existing.StartTime.In(uc.cal.Location())
		start = day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
		end = start.Add(duration)
	}

	if !input.EndTime.IsZero() {
		end = input.EndTime
	}
	return start, end, nil
}

func (uc *implUseCase) mirrorUpdate(ctx context.Context, updated event.Event) {
	if updated.MirrorEventID == "" {
		return
	}
	_, err := uc.mirror.UpdateEvent(ctx, gcalendar.UpdateEventRequest{
		CalendarID:  uc.calendarID,
		EventID:     updated.MirrorEventID,
		Summary:     updated.Title,
		Description: updated.Description,
		Location:    updated.Location,
		StartTime:   updated.StartTime,
		EndTime:     updated.EndTime,
		Timezone:    uc.cal.Location().String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Update mirror UpdateEvent: %v", err)
	}
}

package usecase

import (
	"context"

	"ai-calendar-assistant/internal/event"
	repo "ai-calendar-assistant/internal/event/repository"
)

// List returns the user's events ordered by start time ascending. A missing
// identity is the valid signed-out state: no events, no error. The Date
// filter matches the exact local calendar day regardless of time of day; the
// Month filter matches the visible-month window.
func (uc *implUseCase) List(ctx context.Context, input event.ListEventsInput) (event.ListEventsOutput, error) {
	if input.UserID == "" {
		return event.ListEventsOutput{}, nil
	}

	opt := repo.ListEventsOptions{UserID: input.UserID}

	switch {
	case input.Date != "":
		day, err := uc.cal.ParseDate(input.Date)
		if err != nil {
			return event.ListEventsOutput{}, event.ErrInvalidDate
		}
		opt.StartFrom = day
		opt.StartTo = uc.cal.NextDay(day)
	case input.Month != "":
		anchor, err := uc.cal.ParseMonth(input.Month)
		if err != nil {
			return event.ListEventsOutput{}, event.ErrInvalidDate
		}
		opt.StartFrom, opt.StartTo = uc.cal.MonthWindow(anchor)
	}

	events, err := uc.repo.ListEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListEventsOutput{}, err
	}

	return event.ListEventsOutput{Events: events, Total: len(events)}, nil
}

package usecase

import (
	"ai-calendar-assistant/internal/event/repository"
	"ai-calendar-assistant/pkg/dateutil"
	"ai-calendar-assistant/pkg/gcalendar"
	"ai-calendar-assistant/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo       repository.Repository
	mirror     gcalendar.Mirror
	cal        *dateutil.Calendar
	calendarID string
	l          log.Logger
}

// New creates a new event UseCase implementation. The mirror may be a
// gcalendar.Noop when no hosted calendar is configured.
func New(repo repository.Repository, mirror gcalendar.Mirror, cal *dateutil.Calendar, calendarID string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		mirror:     mirror,
		cal:        cal,
		calendarID: calendarID,
		l:          l,
	}
}

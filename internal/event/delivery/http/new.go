package http

import (
	"ai-calendar-assistant/internal/event"
	"ai-calendar-assistant/pkg/dateutil"
	"ai-calendar-assistant/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  event.UseCase
	cal *dateutil.Calendar
}

// New creates a new HTTP handler for the event domain. The calendar derives
// the displayed date from each event's start timestamp.
func New(l log.Logger, uc event.UseCase, cal *dateutil.Calendar) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		cal: cal,
	}
}

package http

import (
	"errors"

	"ai-calendar-assistant/internal/event"
	"ai-calendar-assistant/internal/event/repository"
	pkgErrors "ai-calendar-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Store failures are recoverable for the caller: state stays at
// last-known-good and the message is safe to show inline.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return pkgErrors.NewHTTPError(404, "event not found")
	case errors.Is(err, event.ErrUnauthenticated):
		return pkgErrors.NewHTTPError(401, "sign in to manage events")
	case errors.Is(err, event.ErrTitleRequired),
		errors.Is(err, event.ErrDateRequired),
		errors.Is(err, event.ErrInvalidDate),
		errors.Is(err, event.ErrPastDate):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, repository.ErrFailedToInsert),
		errors.Is(err, repository.ErrFailedToGet),
		errors.Is(err, repository.ErrFailedToList),
		errors.Is(err, repository.ErrFailedToUpdate),
		errors.Is(err, repository.ErrFailedToDelete):
		return pkgErrors.NewHTTPError(502, "event store request failed")
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}

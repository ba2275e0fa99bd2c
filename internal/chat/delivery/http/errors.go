package http

import (
	"errors"

	"ai-calendar-assistant/internal/chat"
	pkgErrors "ai-calendar-assistant/pkg/errors"
)

// mapError translates chat use-case errors into HTTP errors from
// pkg/errors. Assistant-side failures never reach here: they surface
// as messages inside the transcript.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, chat.ErrUnauthenticated):
		return pkgErrors.NewHTTPError(401, "sign in to use the assistant")
	default:
		return pkgErrors.NewHTTPError(500, "internal error")
	}
}

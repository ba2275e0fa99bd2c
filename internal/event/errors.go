package event

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrTitleRequired   = errors.New("event title is required")
	ErrDateRequired    = errors.New("event date is required")
	ErrInvalidDate     = errors.New("event date is invalid")
	ErrPastDate        = errors.New("event date is before today")
	ErrUnauthenticated = errors.New("no authenticated user")
)

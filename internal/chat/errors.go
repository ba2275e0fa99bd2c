package chat

import "errors"

var (
	ErrEmptyMessage    = errors.New("chat message is empty")
	ErrUnauthenticated = errors.New("no authenticated user")
)

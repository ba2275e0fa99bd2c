package chat

import "ai-calendar-assistant/internal/chat/transcript"

// --- UseCase Inputs ---

// SendMessageInput is a user chat turn.
type SendMessageInput struct {
	UserID string
	Text   string
}

// --- UseCase Outputs ---

// SendMessageOutput returns the messages appended during this turn,
// the user's message first and the assistant's reply after it.
type SendMessageOutput struct {
	Messages []transcript.Message
}

type HistoryOutput struct {
	Messages []transcript.Message
}

package http

import (
	"time"

	"ai-calendar-assistant/internal/chat"
	"ai-calendar-assistant/internal/chat/transcript"
)

// --- Request DTOs ---

type sendReq struct {
	UserID string `json:"-"` // populated from the verified token
	Text   string `json:"text" binding:"required,max=4000"`
}

func (r sendReq) validate() error { return nil }

func (r sendReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		UserID: r.UserID,
		Text:   r.Text,
	}
}

// --- Response DTOs ---

type messageResp struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type sendResp struct {
	Messages []messageResp `json:"messages"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
	Total    int           `json:"total"`
}

func newMessageResp(msg transcript.Message) messageResp {
	return messageResp{
		ID:        msg.ID,
		Sender:    string(msg.Sender),
		Text:      msg.Text,
		Timestamp: msg.Timestamp,
	}
}

func newMessageResps(msgs []transcript.Message) []messageResp {
	out := make([]messageResp, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, newMessageResp(msg))
	}
	return out
}

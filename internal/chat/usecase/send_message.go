package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ai-calendar-assistant/internal/chat"
	"ai-calendar-assistant/internal/chat/intent"
	"ai-calendar-assistant/internal/chat/transcript"
	"ai-calendar-assistant/internal/event"
	"ai-calendar-assistant/pkg/dateutil"
	"ai-calendar-assistant/pkg/gemini"
)

const systemInstruction = `You are a helpful calendar assistant. Answer questions about the user's schedule using the event list provided with each message. Keep replies short and friendly. If the user asks about something unrelated to their calendar or scheduling, politely steer the conversation back to the calendar.`

func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	if input.UserID == "" {
		return chat.SendMessageOutput{}, chat.ErrUnauthenticated
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	userMsg := uc.store.Append(input.UserID, transcript.SenderUser, text)

	var reply string
	if ext, ok := uc.policy.Extract(text, uc.cal.Location()); ok {
		reply = uc.addEvent(ctx, input.UserID, ext)
	} else {
		reply = uc.generateReply(ctx, input.UserID, text)
	}
	assistantMsg := uc.store.Append(input.UserID, transcript.SenderAssistant, reply)

	return chat.SendMessageOutput{
		Messages: []transcript.Message{userMsg, assistantMsg},
	}, nil
}

// addEvent creates the extracted event and phrases the outcome for the
// transcript. Failures stay inside the conversation; the chat endpoint
// itself never errors over a rejected draft.
func (uc *implUseCase) addEvent(ctx context.Context, userID string, ext intent.Extraction) string {
	in := event.CreateEventInput{
		UserID: userID,
		Title:  ext.Title,
	}
	if ext.HasTime {
		in.StartTime = ext.Start()
	} else {
		in.Date = ext.Date.Format(dateutil.DateFormat)
	}

	out, err := uc.events.Create(ctx, in)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.addEvent.Create: %v", err)
		if errors.Is(err, event.ErrPastDate) {
			return fmt.Sprintf("I can't add %q because %s is in the past. Please pick today or a future date.",
				ext.Title, ext.Date.Format("January 2, 2006"))
		}
		return "Sorry, I couldn't save that event. Please try again."
	}

	when := out.Event.StartTime.Format("January 2, 2006")
	if ext.HasTime {
		when += " at " + out.Event.StartTime.Format("3:04 PM")
	}
	return fmt.Sprintf("Added %q to your calendar on %s.", out.Event.Title, when)
}

// generateReply forwards the message to the generative model together
// with a digest of the user's events.
func (uc *implUseCase) generateReply(ctx context.Context, userID, text string) string {
	digest := uc.eventDigest(ctx, userID)
	prompt := fmt.Sprintf("Here are the user's calendar events:\n%s\nUser message: %s", digest, text)

	reply, err := uc.llm.GenerateText(ctx, systemInstruction, prompt)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.generateReply.GenerateText: %v", err)
		if errors.Is(err, gemini.ErrQuotaExceeded) {
			return "I've hit my usage quota for now. Please try again in a little while."
		}
		return "Sorry, there was an error getting a response from Gemini."
	}
	return strings.TrimSpace(reply)
}

// eventDigest renders the user's events one per line for the model
// prompt. A listing failure degrades to an empty calendar rather than
// failing the turn.
func (uc *implUseCase) eventDigest(ctx context.Context, userID string) string {
	out, err := uc.events.List(ctx, event.ListEventsInput{UserID: userID})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.eventDigest.List: %v", err)
		return "(no events)"
	}
	if len(out.Events) == 0 {
		return "(no events)"
	}

	var b strings.Builder
	for _, evt := range out.Events {
		line := fmt.Sprintf("- %s on %s", evt.Title, evt.StartTime.Format("January 2, 2006"))
		if !uc.cal.StartOfDay(evt.StartTime).Equal(evt.StartTime) {
			line += " at " + evt.StartTime.Format("3:04 PM")
		}
		if evt.Description != "" {
			line += fmt.Sprintf(" (%s)", evt.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

package usecase

import (
	"context"

	"ai-calendar-assistant/internal/chat/intent"
	"ai-calendar-assistant/internal/chat/transcript"
	"ai-calendar-assistant/internal/event"
	"ai-calendar-assistant/pkg/dateutil"
	"ai-calendar-assistant/pkg/log"
)

// Generator produces a free-form assistant reply. *gemini.Client
// satisfies it.
type Generator interface {
	GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	events event.UseCase
	llm    Generator
	store  *transcript.Store
	policy *intent.Policy
	cal    *dateutil.Calendar
	l      log.Logger
}

// New creates a new chat UseCase implementation.
func New(events event.UseCase, llm Generator, store *transcript.Store, cal *dateutil.Calendar, l log.Logger) *implUseCase {
	return &implUseCase{
		events: events,
		llm:    llm,
		store:  store,
		policy: intent.PolicyV1(),
		cal:    cal,
		l:      l,
	}
}

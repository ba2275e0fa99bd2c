package usecase

import (
	"context"

	"ai-calendar-assistant/internal/chat"
)

func (uc *implUseCase) History(ctx context.Context, userID string) (chat.HistoryOutput, error) {
	if userID == "" {
		return chat.HistoryOutput{}, chat.ErrUnauthenticated
	}
	return chat.HistoryOutput{Messages: uc.store.History(userID)}, nil
}

func (uc *implUseCase) Reset(ctx context.Context, userID string) error {
	if userID == "" {
		return chat.ErrUnauthenticated
	}
	uc.store.Reset(userID)
	return nil
}

package chat

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	SendMessage(ctx context.Context, input SendMessageInput) (SendMessageOutput, error)
	History(ctx context.Context, userID string) (HistoryOutput, error)
	Reset(ctx context.Context, userID string) error
}

package event

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Event CRUD
	Create(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)
	List(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Detail(ctx context.Context, userID, id string) (DetailEventOutput, error)
	Update(ctx context.Context, input UpdateEventInput) (UpdateEventOutput, error)
	Delete(ctx context.Context, userID, id string) error
}

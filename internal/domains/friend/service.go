package friend

import "context"

type Service interface {
	List(ctx context.Context) ([]Friend, error)
	Create(ctx context.Context, input CreateInput) (*Friend, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Friend, error)
}

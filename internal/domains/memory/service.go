package memory

import "context"

type Service interface {
	List(ctx context.Context) ([]Memory, error)
	Create(ctx context.Context, input CreateInput) (*Memory, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Memory, error)
}

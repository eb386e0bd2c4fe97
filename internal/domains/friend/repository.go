package friend

import "context"

// Repository is the friend collection. List returns friends oldest
// first. Update merges only the non-nil fields of the input; two
// concurrent updates are last-writer-wins per field set, not atomic.
type Repository interface {
	List(ctx context.Context) ([]Friend, error)
	Get(ctx context.Context, id string) (*Friend, error)
	Create(ctx context.Context, input CreateInput) (*Friend, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Friend, error)
	Delete(ctx context.Context, id string) error
}

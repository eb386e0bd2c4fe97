package memory

import "context"

// Repository is the memory collection. List returns memories oldest
// first. Update merges only the non-nil fields of the input; two
// concurrent updates are last-writer-wins per field set, not atomic.
type Repository interface {
	List(ctx context.Context) ([]Memory, error)
	Get(ctx context.Context, id string) (*Memory, error)
	Create(ctx context.Context, input CreateInput) (*Memory, error)
	Update(ctx context.Context, id string, input UpdateInput) (*Memory, error)
	Delete(ctx context.Context, id string) error
}

package photo

import "context"

// Repository is the photo collection. List returns photos newest first.
// Delete is idempotent: deleting an id with no record is not an error.
type Repository interface {
	List(ctx context.Context) ([]Photo, error)
	Get(ctx context.Context, id string) (*Photo, error)
	Create(ctx context.Context, input CreateInput) (*Photo, error)
	Delete(ctx context.Context, id string) error
}

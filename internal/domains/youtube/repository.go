package youtube

import "context"

// Repository is the cached video collection. List returns videos newest
// first. Upsert replaces an existing record with the same id while
// preserving its original CreatedAt; a new id gets a fresh CreatedAt.
type Repository interface {
	List(ctx context.Context) ([]Video, error)
	Get(ctx context.Context, id string) (*Video, error)
	Upsert(ctx context.Context, input UpsertInput) (*Video, error)
	Delete(ctx context.Context, id string) error
}

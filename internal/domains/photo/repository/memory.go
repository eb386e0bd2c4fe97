package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"squadsite-backend/internal/domains/photo"

	"github.com/google/uuid"
)

// MemoryRepository keeps photos in process memory. Nothing survives a
// restart; only the files themselves stay on disk.
type MemoryRepository struct {
	mu     sync.RWMutex
	photos map[string]photo.Photo
	order  []string // insertion order, used as a sort tie-break
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		photos: make(map[string]photo.Photo),
	}
}

// List returns photos sorted by creation time, newest first.
func (r *MemoryRepository) List(ctx context.Context) ([]photo.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]photo.Photo, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.photos[id])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*photo.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.photos[id]
	if !ok {
		return nil, photo.ErrPhotoNotFound
	}
	return &p, nil
}

func (r *MemoryRepository) Create(ctx context.Context, input photo.CreateInput) (*photo.Photo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := photo.Photo{
		ID:           uuid.NewString(),
		Filename:     input.Filename,
		OriginalName: input.OriginalName,
		Caption:      input.Caption,
		UploadedBy:   input.UploadedBy,
		CreatedAt:    time.Now(),
	}

	r.photos[p.ID] = p
	r.order = append(r.order, p.ID)

	return &p, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[id]; !ok {
		return nil
	}

	delete(r.photos, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"squadsite-backend/internal/domains/youtube"
)

// MemoryRepository caches fetched videos in process memory; nothing
// survives a restart.
type MemoryRepository struct {
	mu     sync.RWMutex
	videos map[string]youtube.Video
	order  []string // insertion order, used as a sort tie-break
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		videos: make(map[string]youtube.Video),
	}
}

// List returns videos sorted by creation time, newest first.
func (r *MemoryRepository) List(ctx context.Context) ([]youtube.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]youtube.Video, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.videos[id])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*youtube.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.videos[id]
	if !ok {
		return nil, youtube.ErrVideoNotFound
	}
	return &v, nil
}

// Upsert inserts the video, or replaces all fields of an existing
// record with the same id while keeping its original CreatedAt.
func (r *MemoryRepository) Upsert(ctx context.Context, input youtube.UpsertInput) (*youtube.Video, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	createdAt := time.Now()
	if existing, ok := r.videos[input.ID]; ok {
		createdAt = existing.CreatedAt
	} else {
		r.order = append(r.order, input.ID)
	}

	v := youtube.Video{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Thumbnail:   input.Thumbnail,
		Duration:    input.Duration,
		ViewCount:   input.ViewCount,
		PublishedAt: input.PublishedAt,
		CreatedAt:   createdAt,
	}

	r.videos[v.ID] = v
	return &v, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.videos[id]; !ok {
		return nil
	}

	delete(r.videos, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"squadsite-backend/internal/domains/memory"

	"github.com/google/uuid"
)

// MemoryRepository keeps timeline entries in process memory; nothing
// survives a restart.
type MemoryRepository struct {
	mu       sync.RWMutex
	memories map[string]memory.Memory
	order    []string // insertion order, used as a sort tie-break
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		memories: make(map[string]memory.Memory),
	}
}

// List returns memories sorted by creation time, oldest first.
func (r *MemoryRepository) List(ctx context.Context) ([]memory.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]memory.Memory, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.memories[id])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*memory.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.memories[id]
	if !ok {
		return nil, memory.ErrMemoryNotFound
	}
	return &m, nil
}

func (r *MemoryRepository) Create(ctx context.Context, input memory.CreateInput) (*memory.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entryType := input.Type
	if entryType == "" {
		entryType = memory.DefaultType
	}

	m := memory.Memory{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Type:        entryType,
		CreatedAt:   time.Now(),
	}

	r.memories[m.ID] = m
	r.order = append(r.order, m.ID)

	return &m, nil
}

// Update merges the non-nil fields of input into the existing record.
func (r *MemoryRepository) Update(ctx context.Context, id string, input memory.UpdateInput) (*memory.Memory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.memories[id]
	if !ok {
		return nil, memory.ErrMemoryNotFound
	}

	if input.Title != nil {
		m.Title = *input.Title
	}
	if input.Description != nil {
		m.Description = *input.Description
	}
	if input.Date != nil {
		m.Date = *input.Date
	}
	if input.Type != nil {
		m.Type = *input.Type
	}

	r.memories[id] = m
	return &m, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.memories[id]; !ok {
		return nil
	}

	delete(r.memories, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

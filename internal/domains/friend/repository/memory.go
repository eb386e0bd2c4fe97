package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"squadsite-backend/internal/domains/friend"

	"github.com/google/uuid"
)

// MemoryRepository keeps friends in process memory; nothing survives a
// restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	friends map[string]friend.Friend
	order   []string // insertion order, used as a sort tie-break
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		friends: make(map[string]friend.Friend),
	}
}

// List returns friends sorted by creation time, oldest first.
func (r *MemoryRepository) List(ctx context.Context) ([]friend.Friend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]friend.Friend, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.friends[id])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*friend.Friend, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.friends[id]
	if !ok {
		return nil, friend.ErrFriendNotFound
	}
	return &f, nil
}

func (r *MemoryRepository) Create(ctx context.Context, input friend.CreateInput) (*friend.Friend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := friend.Friend{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Bio:         input.Bio,
		Avatar:      input.Avatar,
		Role:        input.Role,
		SocialLinks: input.SocialLinks,
		CreatedAt:   time.Now(),
	}

	r.friends[f.ID] = f
	r.order = append(r.order, f.ID)

	return &f, nil
}

// Update merges the non-nil fields of input into the existing record.
func (r *MemoryRepository) Update(ctx context.Context, id string, input friend.UpdateInput) (*friend.Friend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.friends[id]
	if !ok {
		return nil, friend.ErrFriendNotFound
	}

	if input.Name != nil {
		f.Name = *input.Name
	}
	if input.Bio != nil {
		f.Bio = *input.Bio
	}
	if input.Avatar != nil {
		f.Avatar = *input.Avatar
	}
	if input.Role != nil {
		f.Role = *input.Role
	}
	if input.SocialLinks != nil {
		f.SocialLinks = *input.SocialLinks
	}

	r.friends[id] = f
	return &f, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.friends[id]; !ok {
		return nil
	}

	delete(r.friends, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

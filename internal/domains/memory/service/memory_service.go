package service

import (
	"context"

	"squadsite-backend/internal/domains/memory"
)

type MemoryService struct {
	repo memory.Repository
}

func NewMemoryService(repo memory.Repository) *MemoryService {
	return &MemoryService{
		repo: repo,
	}
}

func (s *MemoryService) List(ctx context.Context) ([]memory.Memory, error) {
	return s.repo.List(ctx)
}

func (s *MemoryService) Create(ctx context.Context, input memory.CreateInput) (*memory.Memory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

func (s *MemoryService) Update(ctx context.Context, id string, input memory.UpdateInput) (*memory.Memory, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

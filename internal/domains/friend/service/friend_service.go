package service

import (
	"context"

	"squadsite-backend/internal/domains/friend"
)

type FriendService struct {
	repo friend.Repository
}

func NewFriendService(repo friend.Repository) *FriendService {
	return &FriendService{
		repo: repo,
	}
}

func (s *FriendService) List(ctx context.Context) ([]friend.Friend, error) {
	return s.repo.List(ctx)
}

func (s *FriendService) Create(ctx context.Context, input friend.CreateInput) (*friend.Friend, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

func (s *FriendService) Update(ctx context.Context, id string, input friend.UpdateInput) (*friend.Friend, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

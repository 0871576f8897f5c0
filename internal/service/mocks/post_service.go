package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/n1207n/fullstack-posts/db/sqlc"
	"github.com/n1207n/fullstack-posts/internal/service"
	"github.com/stretchr/testify/mock"
)

type PostService struct {
	mock.Mock
}

func (m *PostService) CreatePost(ctx context.Context, input service.CreatePostInput) (sqlc.Post, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return sqlc.Post{}, args.Error(1)
	}
	return args.Get(0).(sqlc.Post), args.Error(1)
}

func (m *PostService) ListPosts(ctx context.Context) ([]sqlc.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlc.Post), args.Error(1)
}

func (m *PostService) GetPost(ctx context.Context, id uuid.UUID) (*sqlc.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlc.Post), args.Error(1)
}

func (m *PostService) UpdatePost(ctx context.Context, id uuid.UUID, input service.UpdatePostInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *PostService) DeletePost(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

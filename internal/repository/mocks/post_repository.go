package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/n1207n/fullstack-posts/db/sqlc"
	"github.com/n1207n/fullstack-posts/internal/repository"
	"github.com/stretchr/testify/mock"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) CreatePost(ctx context.Context, arg sqlc.CreatePostParams) (sqlc.Post, error) {
	args := m.Called(ctx, arg)
	if fn, ok := args.Get(0).(func(context.Context, sqlc.CreatePostParams) (sqlc.Post, error)); ok {
		return fn(ctx, arg)
	}
	if args.Get(0) == nil {
		return sqlc.Post{}, args.Error(1)
	}
	return args.Get(0).(sqlc.Post), args.Error(1)
}

func (m *PostRepository) GetPost(ctx context.Context, id uuid.UUID) (*sqlc.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlc.Post), args.Error(1)
}

func (m *PostRepository) ListPosts(ctx context.Context) ([]sqlc.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sqlc.Post), args.Error(1)
}

func (m *PostRepository) UpdatePost(ctx context.Context, arg repository.UpdatePostParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PostRepository) DeletePost(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

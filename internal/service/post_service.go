package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/n1207n/fullstack-posts/db/sqlc"
	"github.com/n1207n/fullstack-posts/internal/events"
	"github.com/n1207n/fullstack-posts/internal/publisher"
	"github.com/n1207n/fullstack-posts/internal/repository"
)

type CreatePostInput struct {
	Title   string
	Content string
}

// UpdatePostInput holds the replaceable fields. A nil field is left untouched.
type UpdatePostInput struct {
	Title   *string
	Content *string
}

type PostService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (sqlc.Post, error)
	ListPosts(ctx context.Context) ([]sqlc.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*sqlc.Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, input UpdatePostInput) error
	DeletePost(ctx context.Context, id uuid.UUID) error
}

type postServiceImpl struct {
	postRepo  repository.PostRepository
	publisher publisher.EventPublisher
	now       func() time.Time
	newID     func() uuid.UUID
}

func NewPostService(postRepo repository.PostRepository, pub publisher.EventPublisher) PostService {
	if pub == nil {
		pub = publisher.NoopPublisher{}
	}
	return &postServiceImpl{
		postRepo:  postRepo,
		publisher: pub,
		now:       now,
		newID:     uuid.New,
	}
}

// now is UTC rounded up to the microsecond resolution of timestamptz, so it
// never precedes the moment it was taken.
func now() time.Time {
	return time.Now().UTC().Add(time.Microsecond - 1).Truncate(time.Microsecond)
}

// CreatePost assigns the id and created_at, inserts the row and returns it as stored.
func (s *postServiceImpl) CreatePost(ctx context.Context, input CreatePostInput) (sqlc.Post, error) {
	post, err := s.postRepo.CreatePost(ctx, sqlc.CreatePostParams{
		ID:        s.newID(),
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: s.now(),
	})
	if err != nil {
		return sqlc.Post{}, err
	}

	if err := s.publisher.PublishPostCreated(events.PostCreatedEvent{
		PostID:    post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}); err != nil {
		log.Printf("failed to publish created event for post %s: %v", post.ID, err)
	}

	return post, nil
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]sqlc.Post, error) {
	return s.postRepo.ListPosts(ctx)
}

// GetPost returns nil without error when the post does not exist.
func (s *postServiceImpl) GetPost(ctx context.Context, id uuid.UUID) (*sqlc.Post, error) {
	return s.postRepo.GetPost(ctx, id)
}

// UpdatePost succeeds whether or not a row matched id.
func (s *postServiceImpl) UpdatePost(ctx context.Context, id uuid.UUID, input UpdatePostInput) error {
	params := repository.UpdatePostParams{
		ID:      id,
		Title:   optionalText(input.Title),
		Content: optionalText(input.Content),
	}

	affected, err := s.postRepo.UpdatePost(ctx, params)
	if err != nil {
		return err
	}
	if affected == 0 {
		return nil
	}

	if err := s.publisher.PublishPostUpdated(events.PostUpdatedEvent{
		PostID:    id,
		Title:     input.Title,
		Content:   input.Content,
		UpdatedAt: s.now(),
	}); err != nil {
		log.Printf("failed to publish updated event for post %s: %v", id, err)
	}

	return nil
}

// DeletePost succeeds whether or not a row matched id.
func (s *postServiceImpl) DeletePost(ctx context.Context, id uuid.UUID) error {
	affected, err := s.postRepo.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return nil
	}

	if err := s.publisher.PublishPostDeleted(events.PostDeletedEvent{
		PostID:    id,
		DeletedAt: s.now(),
	}); err != nil {
		log.Printf("failed to publish deleted event for post %s: %v", id, err)
	}

	return nil
}

func optionalText(v *string) pgtype.Text {
	if v == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *v, Valid: true}
}

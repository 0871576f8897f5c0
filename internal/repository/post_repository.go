package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/n1207n/fullstack-posts/db/sqlc"
	"github.com/n1207n/fullstack-posts/internal/database"
	"github.com/n1207n/fullstack-posts/internal/metrics"
)

// UpdatePostParams describes a sparse update. Only Valid fields are written.
type UpdatePostParams struct {
	ID      uuid.UUID
	Title   pgtype.Text
	Content pgtype.Text
}

// HasChanges reports whether at least one column would be assigned.
func (p UpdatePostParams) HasChanges() bool {
	return p.Title.Valid || p.Content.Valid
}

type PostRepository interface {
	CreatePost(ctx context.Context, arg sqlc.CreatePostParams) (sqlc.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*sqlc.Post, error)
	ListPosts(ctx context.Context) ([]sqlc.Post, error)
	UpdatePost(ctx context.Context, arg UpdatePostParams) (int64, error)
	DeletePost(ctx context.Context, id uuid.UUID) (int64, error)
}

// DBPostRepository runs every operation as a single autocommitted statement.
// It uses the request-scoped connection from ctx when one is present and
// falls back to db otherwise.
type DBPostRepository struct {
	db sqlc.DBTX
}

func NewDBPostRepository(db sqlc.DBTX) PostRepository {
	return &DBPostRepository{db: db}
}

func (r *DBPostRepository) conn(ctx context.Context) sqlc.DBTX {
	if conn, ok := database.ConnFromContext(ctx); ok {
		return conn
	}
	return r.db
}

func (r *DBPostRepository) queries(ctx context.Context) *sqlc.Queries {
	return sqlc.New(r.conn(ctx))
}

func (r *DBPostRepository) CreatePost(ctx context.Context, arg sqlc.CreatePostParams) (sqlc.Post, error) {
	metrics.PostDBQueries.WithLabelValues("create").Inc()
	post, err := r.queries(ctx).CreatePost(ctx, arg)
	if err != nil {
		metrics.PostDBErrors.WithLabelValues("create").Inc()
		return sqlc.Post{}, fmt.Errorf("insert post %s: %w", arg.ID, err)
	}
	return post, nil
}

// GetPost returns nil and no error when no row matches id.
func (r *DBPostRepository) GetPost(ctx context.Context, id uuid.UUID) (*sqlc.Post, error) {
	metrics.PostDBQueries.WithLabelValues("get").Inc()
	post, err := r.queries(ctx).GetPost(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		metrics.PostDBErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("select post %s: %w", id, err)
	}
	return &post, nil
}

func (r *DBPostRepository) ListPosts(ctx context.Context) ([]sqlc.Post, error) {
	metrics.PostDBQueries.WithLabelValues("list").Inc()
	posts, err := r.queries(ctx).ListPosts(ctx)
	if err != nil {
		metrics.PostDBErrors.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("select posts: %w", err)
	}
	if posts == nil {
		posts = []sqlc.Post{}
	}
	return posts, nil
}

// UpdatePost returns the number of rows changed. Zero is not an error, and
// no statement is issued when arg carries no fields.
func (r *DBPostRepository) UpdatePost(ctx context.Context, arg UpdatePostParams) (int64, error) {
	query, args, ok := buildUpdatePostQuery(arg)
	if !ok {
		return 0, nil
	}

	metrics.PostDBQueries.WithLabelValues("update").Inc()
	tag, err := r.conn(ctx).Exec(ctx, query, args...)
	if err != nil {
		metrics.PostDBErrors.WithLabelValues("update").Inc()
		return 0, fmt.Errorf("update post %s: %w", arg.ID, err)
	}
	return tag.RowsAffected(), nil
}

// DeletePost returns the number of rows removed. Zero is not an error.
func (r *DBPostRepository) DeletePost(ctx context.Context, id uuid.UUID) (int64, error) {
	metrics.PostDBQueries.WithLabelValues("delete").Inc()
	n, err := r.queries(ctx).DeletePost(ctx, id)
	if err != nil {
		metrics.PostDBErrors.WithLabelValues("delete").Inc()
		return 0, fmt.Errorf("delete post %s: %w", id, err)
	}
	return n, nil
}

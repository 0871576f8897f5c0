package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	PostCreated = "posts.created"
	PostUpdated = "posts.updated"
	PostDeleted = "posts.deleted"
)

// Event payloads
type PostCreatedEvent struct {
	PostID    uuid.UUID `json:"post_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostUpdatedEvent only carries the fields that were replaced.
type PostUpdatedEvent struct {
	PostID    uuid.UUID `json:"post_id"`
	Title     *string   `json:"title,omitempty"`
	Content   *string   `json:"content,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostDeletedEvent struct {
	PostID    uuid.UUID `json:"post_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

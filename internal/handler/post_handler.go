package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/n1207n/fullstack-posts/db/sqlc"
	"github.com/n1207n/fullstack-posts/internal/service"
)

const (
	msgPostUpdated = "post updated successfully"
	msgPostDeleted = "post deleted successfully"

	postIDKey = "postID"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest requires a non-empty title. Content must be present but may be empty.
type CreatePostRequest struct {
	Title   string  `json:"title" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

// UpdatePostRequest fields are independently optional; null counts as absent.
// A title, when sent, must not be empty.
type UpdatePostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=1"`
	Content *string `json:"content"`
}

type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func newPostResponse(post sqlc.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	input := service.CreatePostInput{
		Title:   req.Title,
		Content: *req.Content,
	}

	post, err := h.postService.CreatePost(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newPostResponse(post))
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts: " + err.Error()})
		return
	}

	res := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		res = append(res, newPostResponse(post))
	}

	c.JSON(http.StatusOK, res)
}

// GetPost answers 200 with a null body when the post does not exist.
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post: " + err.Error()})
		return
	}

	if post == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, newPostResponse(*post))
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	input := service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := h.postService.UpdatePost(c.Request.Context(), id, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msgPostUpdated})
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: msgPostDeleted})
}

// BindPostID rejects a malformed :id before the rest of the chain runs,
// so no database connection is taken for it.
func BindPostID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return
	}
	c.Set(postIDKey, id)
	c.Next()
}

func parsePostID(c *gin.Context) (uuid.UUID, bool) {
	if v, ok := c.Get(postIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id, true
		}
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format"})
		return uuid.Nil, false
	}
	return id, true
}

//go:build integration

package router

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/n1207n/fullstack-posts/internal/handler"
	"github.com/n1207n/fullstack-posts/internal/publisher"
	"github.com/n1207n/fullstack-posts/internal/repository"
	"github.com/n1207n/fullstack-posts/internal/service"
	"github.com/n1207n/fullstack-posts/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *testutil.PostgresDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	db, err := testutil.StartPostgres(ctx)
	if err != nil {
		log.Fatalf("failed to start test database: %s", err)
	}
	testDB = db

	code := m.Run()

	if err := db.Terminate(ctx); err != nil {
		log.Printf("failed to terminate postgres container: %s", err)
	}
	os.Exit(code)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	require.NoError(t, testDB.Truncate(context.Background()))

	gin.SetMode(gin.TestMode)
	postRepo := repository.NewDBPostRepository(testDB.Pool)
	postService := service.NewPostService(postRepo, publisher.NoopPublisher{})
	return New(Options{DB: testDB.Pool, AllowedOrigins: []string{"*"}}, handler.NewPostHandler(postService))
}

func serve(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(jsonBody)
	} else {
		buf = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, req)
	return rr
}

func decodePost(t *testing.T, rr *httptest.ResponseRecorder) handler.PostResponse {
	t.Helper()
	var post handler.PostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &post))
	return post
}

func TestPostsLifecycle(t *testing.T) {
	engine := newTestEngine(t)
	start := time.Now()

	rr := serve(t, engine, http.MethodPost, "/posts", map[string]string{"title": "A", "content": "B"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decodePost(t, rr)
	assert.Equal(t, "A", created.Title)
	assert.Equal(t, "B", created.Content)
	assert.False(t, created.CreatedAt.Before(start))

	path := "/posts/" + created.ID.String()

	rr = serve(t, engine, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	fetched := decodePost(t, rr)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Content, fetched.Content)
	assert.True(t, created.CreatedAt.Equal(fetched.CreatedAt))

	rr = serve(t, engine, http.MethodPut, path, map[string]string{"title": "C"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"post updated successfully"}`, rr.Body.String())

	rr = serve(t, engine, http.MethodGet, path, nil)
	updated := decodePost(t, rr)
	assert.Equal(t, "C", updated.Title)
	assert.Equal(t, "B", updated.Content)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	rr = serve(t, engine, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"post deleted successfully"}`, rr.Body.String())

	rr = serve(t, engine, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "null", rr.Body.String())

	rr = serve(t, engine, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = serve(t, engine, http.MethodPut, path, map[string]string{"content": "ghost"})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListPostsAfterTwoCreates(t *testing.T) {
	engine := newTestEngine(t)

	rr := serve(t, engine, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	first := decodePost(t, serve(t, engine, http.MethodPost, "/posts", map[string]string{"title": "one", "content": "1"}))
	// Keep the two created_at values distinct so the order is not an id tie-break.
	time.Sleep(2 * time.Millisecond)
	second := decodePost(t, serve(t, engine, http.MethodPost, "/posts", map[string]string{"title": "two", "content": "2"}))
	assert.NotEqual(t, first.ID, second.ID)

	rr = serve(t, engine, http.MethodGet, "/posts", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var posts []handler.PostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	assert.Equal(t, first.ID, posts[0].ID)
	assert.Equal(t, second.ID, posts[1].ID)
	assert.False(t, posts[1].CreatedAt.Before(posts[0].CreatedAt))
}

func TestConcurrentCreatesReleaseConnections(t *testing.T) {
	engine := newTestEngine(t)

	const n = 20
	done := make(chan int, n)
	for i := 0; i < n; i++ {
		go func() {
			req, _ := http.NewRequest(http.MethodPost, "/posts", bytes.NewBufferString(`{"title":"t","content":"c"}`))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()
			engine.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, http.StatusCreated, <-done)
	}

	var posts []handler.PostResponse
	rr := serve(t, engine, http.MethodGet, "/posts", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	assert.Len(t, posts, n)
	assert.Zero(t, testDB.Pool.Stat().AcquiredConns())
}

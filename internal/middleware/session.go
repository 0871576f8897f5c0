package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/n1207n/fullstack-posts/internal/database"
)

// ConnAcquirer hands out pooled connections. *pgxpool.Pool satisfies it.
type ConnAcquirer interface {
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
}

// DBSession acquires one connection for the lifetime of the request and
// releases it when the handler chain returns, panics included.
func DBSession(pool ConnAcquirer) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := pool.Acquire(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to acquire database connection: " + err.Error()})
			return
		}
		defer conn.Release()

		c.Request = c.Request.WithContext(database.WithConn(c.Request.Context(), conn))
		c.Next()
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/n1207n/fullstack-posts/internal/metrics"
)

// Metrics records request counts and latency keyed by the matched route
// template, so /posts/:id stays one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

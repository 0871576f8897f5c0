package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/n1207n/fullstack-posts/internal/handler"
	"github.com/n1207n/fullstack-posts/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the engine built by New.
type Options struct {
	Production     bool
	AllowedOrigins []string
	DB             middleware.ConnAcquirer
}

// New builds the gin engine with the shared middleware stack, the posts
// resource and the ping/metrics endpoints.
func New(opts Options, postHandler *handler.PostHandler) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery(), middleware.CORS(opts.AllowedOrigins), middleware.Metrics())

	var session []gin.HandlerFunc
	if opts.DB != nil {
		session = append(session, middleware.DBSession(opts.DB))
	}
	SetupPostRoutes(&router.RouterGroup, postHandler, session...)

	// Ping route for health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

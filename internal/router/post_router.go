package router

import (
	"github.com/gin-gonic/gin"
	"github.com/n1207n/fullstack-posts/internal/handler"
)

// SetupPostRoutes mounts the posts resource. The session middleware (the DB
// scope in production) runs for these routes only, and on /:id routes only
// after the id has parsed.
func SetupPostRoutes(apiGroup *gin.RouterGroup, postHandler *handler.PostHandler, session ...gin.HandlerFunc) {
	scoped := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, session...), h)
	}
	byID := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append([]gin.HandlerFunc{handler.BindPostID}, scoped(h)...)
	}

	postRoutes := apiGroup.Group("/posts")
	{
		postRoutes.POST("", scoped(postHandler.CreatePost)...)
		postRoutes.GET("", scoped(postHandler.ListPosts)...)
		postRoutes.GET("/:id", byID(postHandler.GetPost)...)
		postRoutes.PUT("/:id", byID(postHandler.UpdatePost)...)
		postRoutes.DELETE("/:id", byID(postHandler.DeletePost)...)
	}
}

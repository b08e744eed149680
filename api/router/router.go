package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blogs-api/api/handlers"
	"blogs-api/api/middleware"
	_ "blogs-api/docs"
	"blogs-api/services"
)

// Deps carries the wired services plus a backend health probe, so the
// router stays unaware of which storage backend is active.
type Deps struct {
	Posts    *services.PostsService
	Blogs    *services.BlogsService
	Comments *services.CommentsService
	Likes    *services.LikesService
	Ping     func(ctx context.Context) error
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := deps.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "storage": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/posts", handlers.ListPostsHandler(deps.Posts))
		api.GET("/posts/:id", handlers.GetPostHandler(deps.Posts))
		api.POST("/posts", handlers.CreatePostHandler(deps.Posts))
		api.PUT("/posts/:id", handlers.UpdatePostHandler(deps.Posts))
		api.DELETE("/posts/:id", handlers.DeletePostHandler(deps.Posts))
		api.PUT("/posts/:id/like-status", handlers.SetPostLikeStatusHandler(deps.Likes))

		api.POST("/posts/:id/comments", handlers.CreateCommentHandler(deps.Comments))
		api.GET("/comments/:id", handlers.GetCommentHandler(deps.Comments))
		api.PUT("/comments/:id/like-status", handlers.SetCommentLikeStatusHandler(deps.Likes))

		api.GET("/blogs", handlers.ListBlogsHandler(deps.Blogs))
		api.GET("/blogs/:id", handlers.GetBlogHandler(deps.Blogs))
		api.POST("/blogs", handlers.CreateBlogHandler(deps.Blogs))
	}

	return r
}

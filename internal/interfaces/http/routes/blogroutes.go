package routes

import (
	"github.com/gin-gonic/gin"

	bloghandlers "novita/internal/interfaces/http/handlers/blog"
	"novita/internal/interfaces/http/middleware"
)

type BlogRouteConfig struct {
	PostHandler    *bloghandlers.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
	// CommentRateLimit guards comment submission; nil disables limiting.
	CommentRateLimit gin.HandlerFunc
}

func SetupBlogRoutes(engine *gin.Engine, config *BlogRouteConfig) {
	posts := engine.Group("/posts")
	{
		// Reads are public; OptionalAuth lets authors see their own drafts.
		posts.GET("", config.AuthMiddleware.OptionalAuth(), config.PostHandler.ListPosts)

		posts.POST("", config.AuthMiddleware.RequireAuth(), config.PostHandler.CreatePost)

		// Action endpoints before the parameterized slug route so gin does
		// not treat "like" or "comments" segments as slugs.
		posts.POST("/:id/like",
			config.AuthMiddleware.RequireAuth(),
			config.PostHandler.ToggleLike)
		if config.CommentRateLimit != nil {
			posts.POST("/:id/comments",
				config.AuthMiddleware.RequireAuth(),
				config.CommentRateLimit,
				config.PostHandler.AddComment)
		} else {
			posts.POST("/:id/comments",
				config.AuthMiddleware.RequireAuth(),
				config.PostHandler.AddComment)
		}
		posts.PUT("/:id", config.AuthMiddleware.RequireAuth(), config.PostHandler.UpdatePost)
		posts.DELETE("/:id", config.AuthMiddleware.RequireAuth(), config.PostHandler.DeletePost)
	}

	// Slug lookups live on their own prefix so numeric IDs and slugs never
	// collide in the route tree.
	engine.GET("/posts/slug/:slug", config.AuthMiddleware.OptionalAuth(), config.PostHandler.ViewPost)
}

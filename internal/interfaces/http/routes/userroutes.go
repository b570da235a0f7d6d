package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "novita/internal/interfaces/http/handlers/user"
	"novita/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	// LoginRateLimit guards the credential endpoints; nil disables limiting.
	LoginRateLimit gin.HandlerFunc
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	auth := engine.Group("/auth")
	{
		if config.LoginRateLimit != nil {
			auth.POST("/register", config.LoginRateLimit, config.UserHandler.Register)
			auth.POST("/login", config.LoginRateLimit, config.UserHandler.Login)
		} else {
			auth.POST("/register", config.UserHandler.Register)
			auth.POST("/login", config.UserHandler.Login)
		}
		auth.POST("/refresh", config.UserHandler.Refresh)
	}

	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/me", config.UserHandler.GetProfile)
		users.PUT("/me", config.UserHandler.UpdateProfile)
	}
}

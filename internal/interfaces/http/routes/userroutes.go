package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/permission"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/handlers"
)

type UserRouteConfig struct {
	UserHandler *handlers.UserHandler
	Guard       Guard
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	guard := config.Guard

	engine.POST("/register",
		guard.throttle("register"),
		config.UserHandler.Register)
	engine.POST("/login",
		guard.throttle("login"),
		config.UserHandler.Login)

	users := engine.Group("/users")
	users.Use(guard.authenticate())
	{
		users.GET("",
			guard.authorize(permission.ResourceUser, permission.ActionRead),
			config.UserHandler.ListUsers)
	}
}

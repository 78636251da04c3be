package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/permission"
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/handlers"
)

type NotificationRouteConfig struct {
	NotificationHandler *handlers.NotificationHandler
	Guard               Guard
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	guard := config.Guard

	notifications := engine.Group("/notifications")
	notifications.Use(guard.authenticate())
	{
		notifications.GET("",
			guard.authorize(permission.ResourceNotification, permission.ActionRead),
			config.NotificationHandler.ListNotifications)
		notifications.PUT("/:id/read",
			guard.authorize(permission.ResourceNotification, permission.ActionUpdate),
			config.NotificationHandler.MarkAsRead)
	}
}

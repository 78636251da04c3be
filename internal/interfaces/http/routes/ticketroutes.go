package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/permission"
	tickethandlers "github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler *tickethandlers.TicketHandler
	Guard         Guard
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	guard := config.Guard

	tickets := engine.Group("/tickets")
	tickets.Use(guard.authenticate())
	{
		// Collection operations (no ID parameter)
		tickets.GET("",
			guard.authorize(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.ListTickets)
		tickets.POST("",
			guard.authorize(permission.ResourceTicket, permission.ActionCreate),
			config.TicketHandler.CreateTicket)

		// Comment log of a ticket
		tickets.GET("/:id/comments",
			guard.authorize(permission.ResourceComment, permission.ActionRead),
			config.TicketHandler.ListComments)
		tickets.POST("/:id/comments",
			guard.authorize(permission.ResourceComment, permission.ActionCreate),
			config.TicketHandler.AddComment)

		tickets.GET("/:id",
			guard.authorize(permission.ResourceTicket, permission.ActionRead),
			config.TicketHandler.GetTicket)
		tickets.PUT("/:id",
			guard.authorize(permission.ResourceTicket, permission.ActionUpdate),
			config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			guard.authorize(permission.ResourceTicket, permission.ActionDelete),
			config.TicketHandler.DeleteTicket)
	}
}

package http

import (
	"github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/handlers"
	ticketHandlers "github.com/Harekrushna7138/ticket-service-backend/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	systemHandler       *handlers.SystemHandler
	userHandler         *handlers.UserHandler
	ticketHandler       *ticketHandlers.TicketHandler
	notificationHandler *handlers.NotificationHandler
}

// ============================================================
// Section 5: Handlers
// ============================================================

func (c *Container) initHandlers() error {
	ucs := c.ucs
	log := c.log

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		systemHandler: handlers.NewSystemHandler(sqlDB, c.cfg.Database.Driver, log),
		userHandler:   handlers.NewUserHandler(ucs.registerUC, ucs.loginUC, ucs.listUsersUC, log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.updateTicketUC,
			ucs.deleteTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.addCommentUC,
			ucs.listCommentsUC,
			log,
		),
		notificationHandler: handlers.NewNotificationHandler(ucs.listNotificationsUC, ucs.markAsReadUC, log),
	}
	return nil
}

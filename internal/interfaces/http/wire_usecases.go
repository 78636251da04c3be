package http

import (
	notificationUsecases "github.com/Harekrushna7138/ticket-service-backend/internal/application/notification/usecases"
	ticketUsecases "github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/usecases"
	"github.com/Harekrushna7138/ticket-service-backend/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User
	registerUC  *usecases.RegisterUseCase
	loginUC     *usecases.LoginUseCase
	listUsersUC *usecases.ListUsersUseCase

	// Ticket
	createTicketUC *ticketUsecases.CreateTicketUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC *ticketUsecases.DeleteTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	addCommentUC   *ticketUsecases.AddCommentUseCase
	listCommentsUC *ticketUsecases.ListCommentsUseCase

	// Notification
	listNotificationsUC *notificationUsecases.ListNotificationsUseCase
	markAsReadUC        *notificationUsecases.MarkNotificationAsReadUseCase
}

// ============================================================
// Section 4: Use Cases
// ============================================================

func (c *Container) initUseCases() {
	repos := c.repos
	log := c.log

	c.ucs = &allUseCases{
		registerUC:  usecases.NewRegisterUseCase(repos.userRepo, c.hasher, c.dispatcher, log),
		loginUC:     usecases.NewLoginUseCase(repos.userRepo, c.hasher, c.jwtSvc, log),
		listUsersUC: usecases.NewListUsersUseCase(repos.userRepo, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.userRepo, c.dispatcher, log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(repos.ticketRepo, c.cfg.Tickets.EnforceTransitions, log),
		deleteTicketUC: ticketUsecases.NewDeleteTicketUseCase(repos.ticketRepo, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, log),
		addCommentUC:   ticketUsecases.NewAddCommentUseCase(repos.commentRepo, log),
		listCommentsUC: ticketUsecases.NewListCommentsUseCase(repos.commentRepo, log),

		listNotificationsUC: notificationUsecases.NewListNotificationsUseCase(repos.notificationRepo, log),
		markAsReadUC:        notificationUsecases.NewMarkNotificationAsReadUseCase(repos.notificationRepo, log),
	}
}

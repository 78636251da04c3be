package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) error
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context) ([]*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, ticketID uint) ([]*dto.CommentDTO, error)
}

// UserFinder resolves the customer a new-ticket notification goes to.
type UserFinder interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
}

// NewTicketNotifier sends the best-effort new-ticket message.
type NewTicketNotifier interface {
	SendNewTicket(ctx context.Context, recipient string, t *ticket.Ticket)
}

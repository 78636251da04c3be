package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	CustomerID  uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userFinder UserFinder
	notifier   NewTicketNotifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userFinder UserFinder,
	notifier NewTicketNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userFinder: userFinder,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute stores a new open ticket and then notifies its customer. A failed
// notification does not fail the request.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "customer_id", cmd.CustomerID)

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("invalid priority", cmd.Priority)
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, priority, cmd.CustomerID)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "customer_id", newTicket.CustomerID())

	uc.notifyCustomer(ctx, newTicket)

	return dto.ToTicketDTO(newTicket), nil
}

func (uc *CreateTicketUseCase) notifyCustomer(ctx context.Context, t *ticket.Ticket) {
	if uc.notifier == nil || uc.userFinder == nil {
		return
	}

	customer, err := uc.userFinder.GetByID(ctx, t.CustomerID())
	if err != nil {
		uc.logger.Warnw("skipping ticket notification, customer lookup failed",
			"ticket_id", t.ID(),
			"customer_id", t.CustomerID(),
			"error", err,
		)
		return
	}

	uc.notifier.SendNewTicket(ctx, customer.Email(), t)
}

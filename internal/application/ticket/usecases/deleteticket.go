package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute removes the ticket and, through the foreign key, its comments.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, ticketID uint) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", ticketID)

	if err := uc.ticketRepo.Delete(ctx, ticketID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", ticketID, "error", err)
		}
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", ticketID)
	return nil
}

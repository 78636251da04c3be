package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		uc.logger.Debugw("failed to get ticket", "ticket_id", ticketID, "error", err)
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

// UpdateTicketCommand is a partial update. Nil fields keep their stored value.
type UpdateTicketCommand struct {
	TicketID        uint
	Title           *string
	Description     *string
	Status          *string
	Priority        *string
	AssignedAgentID *uint
}

type UpdateTicketUseCase struct {
	ticketRepo         ticket.TicketRepository
	enforceTransitions bool
	logger             logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	enforceTransitions bool,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:         ticketRepo,
		enforceTransitions: enforceTransitions,
		logger:             logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	patch, err := toPatch(cmd)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return nil, errors.NewBadRequestError("No fields to update")
	}

	if err := patch.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if uc.enforceTransitions && patch.Status != nil {
		if err := uc.checkTransition(ctx, cmd.TicketID, *patch.Status); err != nil {
			return nil, err
		}
	}

	updated, err := uc.ticketRepo.Update(ctx, cmd.TicketID, patch)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", updated.ID(), "status", updated.Status())
	return dto.ToTicketDTO(updated), nil
}

func toPatch(cmd UpdateTicketCommand) (ticket.Patch, error) {
	patch := ticket.Patch{
		Title:           cmd.Title,
		Description:     cmd.Description,
		AssignedAgentID: cmd.AssignedAgentID,
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return ticket.Patch{}, errors.NewValidationError("invalid status", *cmd.Status)
		}
		patch.Status = &status
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return ticket.Patch{}, errors.NewValidationError("invalid priority", *cmd.Priority)
		}
		patch.Priority = &priority
	}

	return patch, nil
}

// checkTransition reads the current status first, so a concurrent update can
// still slip in between the check and the write.
func (uc *UpdateTicketUseCase) checkTransition(ctx context.Context, ticketID uint, next vo.TicketStatus) error {
	current, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}

	if !current.Status().CanTransitionTo(next) {
		uc.logger.Warnw("rejected status transition",
			"ticket_id", ticketID,
			"from", current.Status(),
			"to", next,
		)
		return errors.NewConflictError(
			"invalid status transition",
			fmt.Sprintf("%s -> %s", current.Status(), next),
		)
	}
	return nil
}

package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute returns the ticket's comments oldest first. An unknown ticket yields an empty list.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, ticketID uint) ([]*dto.CommentDTO, error) {
	comments, err := uc.commentRepo.ListByTicketID(ctx, ticketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", ticketID, "error", err)
		return nil, err
	}

	return dto.ToCommentDTOs(comments), nil
}

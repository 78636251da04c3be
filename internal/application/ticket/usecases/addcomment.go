package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	UserID   uint
	Content  string
}

type AddCommentUseCase struct {
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute appends a comment. The ticket is not read first; a missing ticket is
// reported by the store.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	comment, err := ticket.NewComment(cmd.TicketID, cmd.UserID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)
	return dto.ToCommentDTO(comment), nil
}

package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/notification/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, id uint) (*dto.NotificationDTO, error) {
	uc.logger.Infow("executing mark notification as read use case", "id", id)

	if id == 0 {
		return nil, errors.NewValidationError("notification ID is required")
	}

	n, err := uc.repo.MarkAsRead(ctx, id)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to mark notification as read", "id", id, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("notification marked as read", "id", id)
	return dto.ToNotificationDTO(n), nil
}

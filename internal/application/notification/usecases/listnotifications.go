package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/notification/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(
	repo notification.Repository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists notifications newest first, for one recipient when req.UserID is set.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) ([]*dto.NotificationDTO, error) {
	notifications, err := uc.repo.List(ctx, req.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "error", err)
		return nil, err
	}

	return dto.ToNotificationDTOs(notifications), nil
}

package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/notification/dto"
)

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, req dto.ListNotificationsRequest) ([]*dto.NotificationDTO, error)
}

type MarkNotificationAsReadExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.NotificationDTO, error)
}

package mappers

import (
	"fmt"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/models"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/mapper"
)

type NotificationMapper interface {
	ToModel(n *notification.Notification) *models.NotificationModel
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
	ToDomainList(notificationModels []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.IsRead(),
		TicketID:  n.TicketID(),
		CreatedAt: n.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	typ := vo.NotificationType(model.Type)
	if !typ.IsValid() {
		return nil, fmt.Errorf("unknown notification type %q", model.Type)
	}

	return notification.ReconstructNotification(
		model.ID,
		model.UserID,
		typ,
		model.Title,
		model.Message,
		model.Read,
		model.CreatedAt,
		model.TicketID,
	), nil
}

func (m *NotificationMapperImpl) ToDomainList(notificationModels []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSliceWithID(notificationModels, m.ToDomain, func(model *models.NotificationModel) uint {
		return model.ID
	})
}

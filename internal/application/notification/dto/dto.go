package dto

import (
	"time"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/mapper"
)

type NotificationDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Type      string    `json:"type"`
	TypeLabel string    `json:"type_label"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	TicketID  *uint     `json:"ticket_id"`
}

type ListNotificationsRequest struct {
	UserID *uint
}

func ToNotificationDTO(n *notification.Notification) *NotificationDTO {
	if n == nil {
		return nil
	}
	return &NotificationDTO{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Type:      n.Type().String(),
		TypeLabel: n.Type().Label(),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
		TicketID:  n.TicketID(),
	}
}

// ToNotificationDTOs never returns nil so an empty list encodes as [].
func ToNotificationDTOs(notifications []*notification.Notification) []*NotificationDTO {
	result := mapper.MapSlice(notifications, ToNotificationDTO)
	if result == nil {
		return []*NotificationDTO{}
	}
	return result
}

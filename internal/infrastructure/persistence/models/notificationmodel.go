package models

import (
	"time"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/constants"
)

type NotificationModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Type      string    `gorm:"size:30;not null"`
	Title     string    `gorm:"size:255;not null"`
	Message   string    `gorm:"type:text;not null"`
	Read      bool      `gorm:"column:is_read;not null;default:false"`
	TicketID  *uint     `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

package models

import (
	"time"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/constants"
)

// TicketModel maps the tickets table. The postgres migrations declare status and
// priority as enum columns; AutoMigrate creates them as varchar.
type TicketModel struct {
	ID              uint       `gorm:"primaryKey"`
	Title           string     `gorm:"size:200;not null"`
	Description     string     `gorm:"type:text;not null"`
	Status          string     `gorm:"size:20;not null;default:'open';index"`
	Priority        string     `gorm:"size:20;not null;default:'medium'"`
	CustomerID      uint       `gorm:"not null;index"`
	AssignedAgentID *uint      `gorm:"index"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false"`
	ResolvedAt      *time.Time
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type CommentModel struct {
	ID        uint        `gorm:"primaryKey"`
	TicketID  uint        `gorm:"not null;index"`
	UserID    uint        `gorm:"not null;index"`
	Content   string      `gorm:"type:text;not null"`
	CreatedAt time.Time   `gorm:"not null"`
	Ticket    TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

func (CommentModel) TableName() string {
	return constants.TableComments
}

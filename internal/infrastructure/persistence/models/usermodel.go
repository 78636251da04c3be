package models

import (
	"time"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID            uint   `gorm:"primarykey"`
	Email         string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string `gorm:"not null;size:255"`
	FirstName     string `gorm:"not null;size:100"`
	LastName      string `gorm:"not null;size:100"`
	Role          string `gorm:"size:20;not null;default:'customer'"`
	EmailVerified bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

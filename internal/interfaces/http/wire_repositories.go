package http

import (
	"gorm.io/gorm"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/repository"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         user.Repository
	ticketRepo       ticket.TicketRepository
	commentRepo      ticket.CommentRepository
	notificationRepo notification.Repository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	ticketRepo := repository.NewTicketRepository(db, log)

	return &repositories{
		userRepo:         repository.NewUserRepository(db, log),
		ticketRepo:       ticketRepo,
		commentRepo:      ticketRepo.Comments(),
		notificationRepo: repository.NewNotificationRepository(db, log),
	}
}

package migrations

import (
	"gorm.io/gorm"

	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/models"
)

// AllModels lists the persistence models in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.NotificationModel{},
	}
}

// AutoMigrate creates or updates the schema from the models. It is used for
// sqlite and mysql; postgres runs the SQL scripts so that enum columns exist.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

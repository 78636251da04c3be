package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/mappers"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/models"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/db"
	apperrors "github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

const entityNotification = "notification"

type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, logger logger.Interface) *NotificationRepository {
	return &NotificationRepository{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	model := r.mapper.ToModel(n)
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification", "user_id", n.UserID(), "error", err)
		return apperrors.NewPersistenceError("insert", entityNotification, err)
	}

	if err := n.SetID(model.ID); err != nil {
		return err
	}
	n.SetCreatedAt(model.CreatedAt)
	return nil
}

// List returns notifications newest first, optionally for a single recipient.
func (r *NotificationRepository) List(ctx context.Context, userID *uint) ([]*notification.Notification, error) {
	var notificationModels []*models.NotificationModel
	query := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Model(&models.NotificationModel{})

	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&notificationModels).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list", entityNotification, err)
	}

	notifications, err := r.mapper.ToDomainList(notificationModels)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", entityNotification, err)
	}
	return notifications, nil
}

// MarkAsRead flips the read flag. Marking an already read notification succeeds.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.NotificationModel{}).Where("id = ?", id).Update("is_read", true)
		if result.Error != nil {
			return apperrors.NewPersistenceError("mark_read", entityNotification, result.Error)
		}

		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("notification not found")
			}
			return apperrors.NewPersistenceError("mark_read", entityNotification, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	n, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", entityNotification, err)
	}
	return n, nil
}

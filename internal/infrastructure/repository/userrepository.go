package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/mappers"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/models"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/db"
	apperrors "github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

const entityUser = "user"

// UserRepository implements user.Repository on GORM
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts the user and writes back the stored id and timestamp.
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Email already registered")
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return apperrors.NewPersistenceError("insert", entityUser, err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		return err
	}
	userEntity.SetCreatedAt(model.CreatedAt)

	r.logger.Infow("user created", "id", model.ID)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "fetch", "id = ?", id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "fetch_by_email", "email = ?", email)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, apperrors.NewPersistenceError("exists_by_email", entityUser, err)
	}
	return count > 0, nil
}

// List returns all users, newest first.
func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var userModels []*models.UserModel
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Order("created_at DESC, id DESC").Find(&userModels).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list", entityUser, err)
	}

	users, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", entityUser, err)
	}
	return users, nil
}

func (r *UserRepository) first(ctx context.Context, op, query string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, apperrors.NewPersistenceError(op, entityUser, err)
	}

	u, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", entityUser, err)
	}
	return u, nil
}

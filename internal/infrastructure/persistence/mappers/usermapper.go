package mappers

import (
	"fmt"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/models"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity. An unknown stored
// role is reported rather than coerced.
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	role, err := vo.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to decode user role: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.FirstName,
		model.LastName,
		role,
		model.EmailVerified,
		model.CreatedAt,
	), nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:            entity.ID(),
		Email:         entity.Email(),
		PasswordHash:  entity.PasswordHash(),
		FirstName:     entity.FirstName(),
		LastName:      entity.LastName(),
		Role:          entity.Role().String(),
		EmailVerified: entity.EmailVerified(),
		CreatedAt:     entity.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSliceWithID(userModels, m.ToEntity, func(model *models.UserModel) uint {
		return model.ID
	})
}

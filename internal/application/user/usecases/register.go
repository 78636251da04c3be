package usecases

import (
	"context"
	"fmt"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/user/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type RegisterCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	notifier       WelcomeNotifier
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	notifier WelcomeNotifier,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		notifier:       notifier,
		logger:         logger,
	}
}

// Execute creates an account. Two racing registrations for one email are
// settled by the unique index; the loser gets the same conflict error.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email)

	role, err := vo.NewRole(cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError("invalid role", cmd.Role)
	}

	if cmd.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing email", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("Email already registered")
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.Email, hash, cmd.FirstName, cmd.LastName, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create user", "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "role", newUser.Role())

	if uc.notifier != nil {
		uc.notifier.SendWelcome(ctx, newUser)
	}

	return dto.ToUserDTO(newUser), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/user/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		logger:         logger,
	}
}

// Execute checks the password and issues a session token. An unknown email and
// a wrong password produce the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	ok, err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash())
	if err != nil {
		uc.logger.Errorw("stored credential cannot be decoded", "user_id", existingUser.ID(), "error", err)
		return nil, err
	}
	if !ok {
		uc.logger.Debugw("password mismatch", "user_id", existingUser.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokenIssuer.Issue(existingUser.ID(), existingUser.Email(), existingUser.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserDTO(existingUser),
	}, nil
}

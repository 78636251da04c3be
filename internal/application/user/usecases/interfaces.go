package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/application/user/dto"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
)

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*dto.UserDTO, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context) ([]*dto.UserDTO, error)
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID uint, email, role string) (string, error)
}

// WelcomeNotifier sends the best-effort welcome message.
type WelcomeNotifier interface {
	SendWelcome(ctx context.Context, u *user.User)
}

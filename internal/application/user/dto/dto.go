package dto

import (
	"time"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/mapper"
)

// UserDTO is the public view of a user. The password hash is never part of it.
type UserDTO struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:            u.ID(),
		Email:         u.Email(),
		FirstName:     u.FirstName(),
		LastName:      u.LastName(),
		Role:          u.Role().String(),
		EmailVerified: u.EmailVerified(),
		CreatedAt:     u.CreatedAt(),
	}
}

func ToUserDTOs(users []*user.User) []*UserDTO {
	result := mapper.MapSlice(users, ToUserDTO)
	if result == nil {
		return []*UserDTO{}
	}
	return result
}

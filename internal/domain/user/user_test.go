package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("alice@x.com", "$argon2id$hash", "Alice", "Liddell", vo.RoleCustomer)
	require.NoError(t, err)

	assert.Equal(t, "alice@x.com", u.Email())
	assert.Equal(t, "Alice Liddell", u.FullName())
	assert.Equal(t, vo.RoleCustomer, u.Role())
	assert.False(t, u.EmailVerified())
	assert.Zero(t, u.ID())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name, email, hash, first, last string
		role                           vo.Role
	}{
		{"bad email", "not-an-email", "h", "A", "B", vo.RoleCustomer},
		{"padded email", " a@x.com", "h", "A", "B", vo.RoleCustomer},
		{"no hash", "a@x.com", "", "A", "B", vo.RoleCustomer},
		{"no first name", "a@x.com", "h", " ", "B", vo.RoleCustomer},
		{"bad role", "a@x.com", "h", "A", "B", vo.Role("superuser")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.hash, tt.first, tt.last, tt.role)
			assert.Error(t, err)
		})
	}
}

func TestRole(t *testing.T) {
	assert.True(t, vo.IsValidRole("agent"))
	assert.False(t, vo.IsValidRole("Agent"))
	assert.True(t, vo.RoleAdmin.IsStaff())
	assert.False(t, vo.RoleCustomer.IsStaff())
}

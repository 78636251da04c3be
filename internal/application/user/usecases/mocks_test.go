package usecases

import (
	"context"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context) ([]*user.User, error)

	createCalls int
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, encoded string) (bool, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, encoded string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, encoded)
	}
	return encoded == "hashed:"+password, nil
}

type mockTokenIssuer struct {
	IssueFunc func(userID uint, email, role string) (string, error)
}

func (m *mockTokenIssuer) Issue(userID uint, email, role string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID, email, role)
	}
	return "token", nil
}

type mockWelcomeNotifier struct {
	welcomed []*user.User
}

func (m *mockWelcomeNotifier) SendWelcome(_ context.Context, u *user.User) {
	m.welcomed = append(m.welcomed, u)
}

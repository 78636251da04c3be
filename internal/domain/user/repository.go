package user

import "context"

type Repository interface {
	// Create inserts u and fills its id. A duplicate email is a conflict error.
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*User, error)
}

// PasswordHasher is the credential codec. Verify returns false on mismatch and an
// error only when the stored record cannot be decoded.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

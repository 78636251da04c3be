package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
)

// User is a registered identity. Email is unique and compared as stored.
type User struct {
	id            uint
	email         string
	passwordHash  string
	firstName     string
	lastName      string
	role          vo.Role
	emailVerified bool
	createdAt     time.Time
}

// NewUser creates an unverified user from an already hashed password.
func NewUser(email, passwordHash, firstName, lastName string, role vo.Role) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil || strings.TrimSpace(email) != email {
		return nil, fmt.Errorf("invalid email address: %q", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, fmt.Errorf("first and last name are required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructUser(
	id uint,
	email, passwordHash, firstName, lastName string,
	role vo.Role,
	emailVerified bool,
	createdAt time.Time,
) *User {
	return &User{
		id:            id,
		email:         email,
		passwordHash:  passwordHash,
		firstName:     firstName,
		lastName:      lastName,
		role:          role,
		emailVerified: emailVerified,
		createdAt:     createdAt,
	}
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Role() vo.Role        { return u.role }
func (u *User) EmailVerified() bool  { return u.emailVerified }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) SetCreatedAt(at time.Time) {
	u.createdAt = at
}

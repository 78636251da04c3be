package valueobjects

import "fmt"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
	RoleAdmin    Role = "admin"
)

var validRoles = map[Role]bool{
	RoleCustomer: true,
	RoleAgent:    true,
	RoleAdmin:    true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// IsStaff reports whether the role works tickets rather than files them.
func (r Role) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}

func IsValidRole(s string) bool {
	return Role(s).IsValid()
}

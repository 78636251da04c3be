package permission

import (
	"fmt"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/permission"
	uservo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

// DefaultPolicies returns the built-in role grants. Agents work tickets but may
// not delete them or browse the user list.
func DefaultPolicies() [][]string {
	admin := uservo.RoleAdmin.String()
	agent := uservo.RoleAgent.String()
	customer := uservo.RoleCustomer.String()

	return [][]string{
		{admin, "*", "*"},

		{agent, permission.ResourceTicket, permission.ActionRead},
		{agent, permission.ResourceTicket, permission.ActionCreate},
		{agent, permission.ResourceTicket, permission.ActionUpdate},
		{agent, permission.ResourceComment, permission.ActionRead},
		{agent, permission.ResourceComment, permission.ActionCreate},
		{agent, permission.ResourceNotification, permission.ActionRead},
		{agent, permission.ResourceNotification, permission.ActionUpdate},

		{customer, permission.ResourceTicket, permission.ActionRead},
		{customer, permission.ResourceTicket, permission.ActionCreate},
		{customer, permission.ResourceComment, permission.ActionRead},
		{customer, permission.ResourceComment, permission.ActionCreate},
		{customer, permission.ResourceNotification, permission.ActionRead},
		{customer, permission.ResourceNotification, permission.ActionUpdate},
	}
}

// InitDefaultPermissions adds every default policy that is not stored yet.
// Policies added by operators are left alone.
func InitDefaultPermissions(enforcer permission.PermissionEnforcer, log logger.Interface) error {
	for _, policy := range DefaultPolicies() {
		if err := enforcer.AddPolicy(policy[0], policy[1], policy[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	log.Infow("default permissions initialized", "policies", len(DefaultPolicies()))
	return nil
}

package permission

// Resources and actions checked on protected routes.
const (
	ResourceUser         = "user"
	ResourceTicket       = "ticket"
	ResourceComment      = "comment"
	ResourceNotification = "notification"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// PermissionEnforcer decides whether a role may perform action on resource.
type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	LoadPolicy() error
}

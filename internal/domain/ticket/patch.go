package ticket

import (
	"fmt"

	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
)

// Patch is a partial ticket update. A nil field keeps the stored value, so a
// field can be changed but never cleared.
type Patch struct {
	Title           *string
	Description     *string
	Status          *vo.TicketStatus
	Priority        *vo.Priority
	AssignedAgentID *uint
}

// IsEmpty reports whether the patch names no field at all.
func (p Patch) IsEmpty() bool {
	return p.Title == nil &&
		p.Description == nil &&
		p.Status == nil &&
		p.Priority == nil &&
		p.AssignedAgentID == nil
}

// Validate checks every supplied field.
func (p Patch) Validate() error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := validateDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *p.Status)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *p.Priority)
	}
	if p.AssignedAgentID != nil && *p.AssignedAgentID == 0 {
		return fmt.Errorf("assigned agent ID cannot be zero")
	}
	return nil
}

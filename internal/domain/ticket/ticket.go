package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

// Ticket is a unit of support work owned by a customer.
type Ticket struct {
	id              uint
	title           string
	description     string
	status          vo.TicketStatus
	priority        vo.Priority
	customerID      uint
	assignedAgentID *uint
	createdAt       time.Time
	updatedAt       *time.Time
	resolvedAt      *time.Time
}

// NewTicket creates a ticket for customerID. The status is always open.
func NewTicket(title, description string, priority vo.Priority, customerID uint) (*Ticket, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}

	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		customerID:  customerID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

// ReconstructTicket rebuilds a ticket from stored values.
func ReconstructTicket(
	id uint,
	title, description string,
	status vo.TicketStatus,
	priority vo.Priority,
	customerID uint,
	assignedAgentID *uint,
	createdAt time.Time,
	updatedAt, resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:              id,
		title:           title,
		description:     description,
		status:          status,
		priority:        priority,
		customerID:      customerID,
		assignedAgentID: assignedAgentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		resolvedAt:      resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) CustomerID() uint        { return t.customerID }
func (t *Ticket) AssignedAgentID() *uint  { return t.assignedAgentID }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() *time.Time   { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time  { return t.resolvedAt }
func (t *Ticket) IsAssigned() bool        { return t.assignedAgentID != nil }

// SetID records the store-assigned id. It may only be called once.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetCreatedAt replaces the creation time with the one the store recorded.
func (t *Ticket) SetCreatedAt(at time.Time) {
	t.createdAt = at
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}

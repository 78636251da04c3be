package ticket

import (
	"github.com/Harekrushna7138/ticket-service-backend/internal/application/ticket/usecases"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/utils"
)

func init() {
	utils.RegisterEnum("ticket_status", vo.IsValidTicketStatus)
	utils.RegisterEnum("ticket_priority", vo.IsValidPriority)
}

// CreateTicketRequest has no status field; new tickets always start open.
type CreateTicketRequest struct {
	Title       string `json:"title" validate:"required,max=200" example:"Printer on fire"`
	Description string `json:"description" validate:"max=5000" example:"Third floor, next to the kitchen"`
	Priority    string `json:"priority" validate:"required,ticket_priority" example:"high"`
	CustomerID  uint   `json:"customer_id" validate:"required,gt=0" example:"1"`
}

func (r *CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		CustomerID:  r.CustomerID,
	}
}

// UpdateTicketRequest is a partial update; omitted fields are left unchanged.
type UpdateTicketRequest struct {
	Title           *string `json:"title" validate:"omitempty,max=200"`
	Description     *string `json:"description" validate:"omitempty,max=5000"`
	Status          *string `json:"status" validate:"omitempty,ticket_status" example:"in_progress"`
	Priority        *string `json:"priority" validate:"omitempty,ticket_priority"`
	AssignedAgentID *uint   `json:"assigned_agent_id" validate:"omitempty,gt=0"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:        ticketID,
		Title:           r.Title,
		Description:     r.Description,
		Status:          r.Status,
		Priority:        r.Priority,
		AssignedAgentID: r.AssignedAgentID,
	}
}

// AddCommentRequest names the author explicitly. When a bearer token was
// presented the author may be omitted and is taken from the token.
type AddCommentRequest struct {
	UserID  uint   `json:"user_id" example:"1"`
	Content string `json:"content" validate:"required" example:"Looking into it"`
}

func (r *AddCommentRequest) ToCommand(ticketID uint) usecases.AddCommentCommand {
	return usecases.AddCommentCommand{
		TicketID: ticketID,
		UserID:   r.UserID,
		Content:  r.Content,
	}
}

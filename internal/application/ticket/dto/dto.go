package dto

import (
	"time"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/mapper"
)

type TicketDTO struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	CustomerID      uint       `json:"customer_id"`
	AssignedAgentID *uint      `json:"assigned_agent_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	ResolvedAt      *time.Time `json:"resolved_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Description:     t.Description(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		CustomerID:      t.CustomerID(),
		AssignedAgentID: t.AssignedAgentID(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		ResolvedAt:      t.ResolvedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	result := mapper.MapSlice(tickets, ToTicketDTO)
	if result == nil {
		return []*TicketDTO{}
	}
	return result
}

func ToCommentDTO(c *ticket.Comment) *CommentDTO {
	if c == nil {
		return nil
	}

	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*ticket.Comment) []*CommentDTO {
	result := mapper.MapSlice(comments, ToCommentDTO)
	if result == nil {
		return []*CommentDTO{}
	}
	return result
}

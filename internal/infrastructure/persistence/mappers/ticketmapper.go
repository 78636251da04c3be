package mappers

import (
	"fmt"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/models"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/mapper"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
// Enum values cross the boundary as their text form.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToDomainList(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error)

	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	CommentsToDomain(commentModels []*models.CommentModel) ([]*ticket.Comment, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
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

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ticket status: %w", err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ticket priority: %w", err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		status,
		priority,
		model.CustomerID,
		model.AssignedAgentID,
		model.CreatedAt,
		model.UpdatedAt,
		model.ResolvedAt,
	)
}

func (m *TicketMapperImpl) ToDomainList(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapSliceWithID(ticketModels, m.ToDomain, func(model *models.TicketModel) uint {
		return model.ID
	})
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}
	return ticket.ReconstructComment(model.ID, model.TicketID, model.UserID, model.Content, model.CreatedAt), nil
}

func (m *TicketMapperImpl) CommentsToDomain(commentModels []*models.CommentModel) ([]*ticket.Comment, error) {
	return mapper.MapSliceWithID(commentModels, m.CommentToDomain, func(model *models.CommentModel) uint {
		return model.ID
	})
}

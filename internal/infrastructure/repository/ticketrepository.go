package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/mappers"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/models"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/db"
	apperrors "github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

const (
	entityTicket  = "ticket"
	entityComment = "comment"
)

// TicketRepository implements ticket.TicketRepository and ticket.CommentRepository.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewNotFoundError("customer not found")
		}
		r.logger.Errorw("failed to create ticket", "error", err)
		return apperrors.NewPersistenceError("insert", entityTicket, err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}
	t.SetCreatedAt(model.CreatedAt)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).WithContext(ctx), "fetch", id)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Order("created_at DESC, id DESC").Find(&ticketModels).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list", entityTicket, err)
	}

	tickets, err := r.mapper.ToDomainList(ticketModels)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", entityTicket, err)
	}
	return tickets, nil
}

// Update writes every column as COALESCE(new, current) in a single statement so
// absent fields keep their value, then returns the stored row. updated_at is
// always stamped.
func (r *TicketRepository) Update(ctx context.Context, id uint, patch ticket.Patch) (*ticket.Ticket, error) {
	var updated *ticket.Ticket

	err := db.GetTxFromContext(ctx, r.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.TicketModel{}).
			Where("id = ?", id).
			Updates(coalesceColumns(db.Dialect(tx), patch))
		if result.Error != nil {
			if apperrors.IsForeignKeyError(result.Error) {
				return apperrors.NewNotFoundError("assigned agent not found")
			}
			return apperrors.NewPersistenceError("update", entityTicket, result.Error)
		}

		// mysql reports zero affected rows when nothing changed, so the
		// re-read below decides whether the row exists.
		t, err := r.get(tx, "update", id)
		if err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return apperrors.NewPersistenceError("delete", entityTicket, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) get(tx *gorm.DB, op string, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, apperrors.NewPersistenceError(op, entityTicket, err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", entityTicket, err)
	}
	return t, nil
}

// coalesceColumns builds the SET clause. Postgres needs the enum parameters cast
// to the column type; other stores keep enums as text.
func coalesceColumns(dialect string, patch ticket.Patch) map[string]interface{} {
	statusExpr := "COALESCE(?, status)"
	priorityExpr := "COALESCE(?, priority)"
	if dialect == "postgres" {
		statusExpr = "COALESCE(CAST(? AS ticket_status), status)"
		priorityExpr = "COALESCE(CAST(? AS ticket_priority), priority)"
	}

	var status, priority *string
	if patch.Status != nil {
		s := patch.Status.String()
		status = &s
	}
	if patch.Priority != nil {
		p := patch.Priority.String()
		priority = &p
	}

	return map[string]interface{}{
		"title":             gorm.Expr("COALESCE(?, title)", patch.Title),
		"description":       gorm.Expr("COALESCE(?, description)", patch.Description),
		"status":            gorm.Expr(statusExpr, status),
		"priority":          gorm.Expr(priorityExpr, priority),
		"assigned_agent_id": gorm.Expr("COALESCE(?, assigned_agent_id)", patch.AssignedAgentID),
		"updated_at":        biztime.NowUTC(),
	}
}

// CreateComment appends a comment. A ticket id the store rejects is reported as
// not found.
func (r *TicketRepository) CreateComment(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		if apperrors.IsForeignKeyError(err) {
			return apperrors.NewNotFoundError("ticket not found")
		}
		r.logger.Errorw("failed to create comment", "ticket_id", c.TicketID(), "error", err)
		return apperrors.NewPersistenceError("insert", entityComment, err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}
	c.SetCreatedAt(model.CreatedAt)
	return nil
}

// ListComments returns a ticket's comments, oldest first.
func (r *TicketRepository) ListComments(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []*models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db).WithContext(ctx)

	if err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, apperrors.NewPersistenceError("list", entityComment, err)
	}

	comments, err := r.mapper.CommentsToDomain(commentModels)
	if err != nil {
		return nil, apperrors.NewPersistenceError("decode", entityComment, err)
	}
	return comments, nil
}

// Comments exposes the comment log backed by the same connection.
func (r *TicketRepository) Comments() ticket.CommentRepository {
	return commentRepository{r}
}

type commentRepository struct {
	tickets *TicketRepository
}

func (c commentRepository) Create(ctx context.Context, comment *ticket.Comment) error {
	return c.tickets.CreateComment(ctx, comment)
}

func (c commentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	return c.tickets.ListComments(ctx, ticketID)
}

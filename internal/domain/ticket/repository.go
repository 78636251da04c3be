package ticket

import "context"

// TicketRepository persists tickets. Missing rows surface as not found errors.
type TicketRepository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// List returns all tickets, newest first.
	List(ctx context.Context) ([]*Ticket, error)
	// Update applies patch in one statement, stamps updated_at and returns the stored row.
	Update(ctx context.Context, id uint, patch Patch) (*Ticket, error)
	Delete(ctx context.Context, id uint) error
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	// ListByTicketID returns the ticket's comments, oldest first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

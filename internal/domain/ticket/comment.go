package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
)

// Comment is an append-only note on a ticket.
type Comment struct {
	id        uint
	ticketID  uint
	userID    uint
	content   string
	createdAt time.Time
}

// NewComment creates a comment. Existence of the ticket and the author is left to
// the store's foreign keys.
func NewComment(ticketID, userID uint, content string) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required")
	}

	return &Comment{
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, ticketID, userID uint, content string, createdAt time.Time) *Comment {
	return &Comment{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		content:   content,
		createdAt: createdAt,
	}
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TicketID() uint       { return c.ticketID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	c.id = id
	return nil
}

func (c *Comment) SetCreatedAt(at time.Time) {
	c.createdAt = at
}

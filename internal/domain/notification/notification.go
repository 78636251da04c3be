package notification

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
)

// Notification is a stored record of an event relevant to a user.
type Notification struct {
	id        uint
	userID    uint
	typ       vo.NotificationType
	title     string
	message   string
	read      bool
	createdAt time.Time
	ticketID  *uint
}

func NewNotification(userID uint, typ vo.NotificationType, title, message string, ticketID *uint) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !typ.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", typ)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	return &Notification{
		userID:    userID,
		typ:       typ,
		title:     title,
		message:   message,
		createdAt: biztime.NowUTC(),
		ticketID:  ticketID,
	}, nil
}

func ReconstructNotification(
	id, userID uint,
	typ vo.NotificationType,
	title, message string,
	read bool,
	createdAt time.Time,
	ticketID *uint,
) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		typ:       typ,
		title:     title,
		message:   message,
		read:      read,
		createdAt: createdAt,
		ticketID:  ticketID,
	}
}

func (n *Notification) ID() uint                  { return n.id }
func (n *Notification) UserID() uint              { return n.userID }
func (n *Notification) Type() vo.NotificationType { return n.typ }
func (n *Notification) Title() string             { return n.title }
func (n *Notification) Message() string           { return n.message }
func (n *Notification) IsRead() bool              { return n.read }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }
func (n *Notification) TicketID() *uint           { return n.ticketID }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	n.id = id
	return nil
}

func (n *Notification) SetCreatedAt(at time.Time) {
	n.createdAt = at
}

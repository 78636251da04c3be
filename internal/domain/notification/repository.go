package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	// List returns notifications newest first; a non-nil userID restricts to that recipient.
	List(ctx context.Context, userID *uint) ([]*Notification, error)
	// MarkAsRead sets the read flag and returns the stored row.
	MarkAsRead(ctx context.Context, id uint) (*Notification, error)
}

// Sink delivers a rendered notification to a recipient address.
type Sink interface {
	Notify(ctx context.Context, to, subject, body string) error
	Name() string
}

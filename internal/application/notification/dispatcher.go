// Package notification delivers best-effort messages about account and ticket
// activity. Delivery failures never reach the caller.
package notification

import (
	"context"
	"strings"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/template"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/goroutine"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

// TemplateRenderer renders a catalogue entry into a subject and body.
type TemplateRenderer interface {
	Render(key string, data any) (subject string, body string, err error)
}

// Dispatcher renders notification texts and hands them to a sink.
type Dispatcher struct {
	sink     notification.Sink
	renderer TemplateRenderer
	recorder notification.Repository
	group    *goroutine.Group
	logger   logger.Interface
}

type DispatcherOption func(*Dispatcher)

// WithAsync runs deliveries on goroutines tracked by group.
func WithAsync(group *goroutine.Group) DispatcherOption {
	return func(d *Dispatcher) {
		d.group = group
	}
}

// WithRecorder also stores a notification row for the recipient.
func WithRecorder(repo notification.Repository) DispatcherOption {
	return func(d *Dispatcher) {
		d.recorder = repo
	}
}

func NewDispatcher(
	sink notification.Sink,
	renderer TemplateRenderer,
	logger logger.Interface,
	opts ...DispatcherOption,
) *Dispatcher {
	d := &Dispatcher{
		sink:     sink,
		renderer: renderer,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch sends subject and body to recipient. Sink errors are logged and dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, recipient, subject, body string) {
	if strings.TrimSpace(recipient) == "" {
		d.logger.Warnw("notification skipped, no recipient", "subject", subject)
		return
	}

	deliver := func(ctx context.Context) {
		if err := d.sink.Notify(ctx, recipient, subject, body); err != nil {
			if !errors.IsSinkError(err) {
				err = errors.NewSinkError(d.sink.Name(), recipient, err)
			}
			d.logger.Errorw("failed to deliver notification",
				"sink", d.sink.Name(),
				"to", recipient,
				"subject", subject,
				"error", err,
			)
			return
		}
		d.logger.Debugw("notification delivered", "sink", d.sink.Name(), "to", recipient)
	}

	if d.group == nil {
		deliver(ctx)
		return
	}

	// the request context is cancelled once the response is written
	detached := context.WithoutCancel(ctx)
	d.group.Go("notification-dispatch", func() {
		deliver(detached)
	})
}

// SendWelcome greets a newly registered user.
func (d *Dispatcher) SendWelcome(ctx context.Context, u *user.User) {
	subject, body, err := d.renderer.Render(template.KeyWelcome, map[string]any{
		"FirstName": u.FirstName(),
		"LastName":  u.LastName(),
		"Email":     u.Email(),
	})
	if err != nil {
		d.logger.Errorw("failed to render welcome notification", "user_id", u.ID(), "error", err)
		return
	}

	d.Dispatch(ctx, u.Email(), subject, body)
	d.record(ctx, u.ID(), vo.TypeWelcome, subject, body, nil)
}

// SendNewTicket tells the ticket's customer that it was filed.
func (d *Dispatcher) SendNewTicket(ctx context.Context, recipient string, t *ticket.Ticket) {
	subject, body, err := d.renderer.Render(template.KeyTicketCreated, map[string]any{
		"TicketID": t.ID(),
		"Title":    t.Title(),
		"Priority": t.Priority().String(),
	})
	if err != nil {
		d.logger.Errorw("failed to render ticket notification", "ticket_id", t.ID(), "error", err)
		return
	}

	ticketID := t.ID()
	d.Dispatch(ctx, recipient, subject, body)
	d.record(ctx, t.CustomerID(), vo.TypeTicketCreated, subject, body, &ticketID)
}

func (d *Dispatcher) record(ctx context.Context, userID uint, typ vo.NotificationType, title, message string, ticketID *uint) {
	if d.recorder == nil {
		return
	}

	n, err := notification.NewNotification(userID, typ, title, message, ticketID)
	if err != nil {
		d.logger.Warnw("failed to build notification record", "user_id", userID, "type", typ, "error", err)
		return
	}
	if err := d.recorder.Create(ctx, n); err != nil {
		d.logger.Errorw("failed to record notification", "user_id", userID, "type", typ, "error", err)
		return
	}
	d.logger.Debugw("notification recorded", "id", n.ID(), "kind", typ.Label())
}

// Wait blocks until queued deliveries have finished.
func (d *Dispatcher) Wait() {
	if d.group != nil {
		d.group.Wait()
	}
}

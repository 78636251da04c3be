package usecases

import (
	"context"
	"sync"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
)

type mockTicketRepository struct {
	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context) ([]*ticket.Ticket, error)
	UpdateFunc  func(ctx context.Context, id uint, patch ticket.Patch) (*ticket.Ticket, error)
	DeleteFunc  func(ctx context.Context, id uint) error

	updateCalls int
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, id uint, patch ticket.Patch) (*ticket.Ticket, error) {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockCommentRepository struct {
	CreateFunc         func(ctx context.Context, c *ticket.Comment) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserFinder struct {
	GetByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserFinder) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type sentTicketNotification struct {
	recipient string
	ticketID  uint
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []sentTicketNotification
}

func (m *mockNotifier) SendNewTicket(_ context.Context, recipient string, t *ticket.Ticket) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentTicketNotification{recipient: recipient, ticketID: t.ID()})
}

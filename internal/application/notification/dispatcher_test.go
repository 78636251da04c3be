package notification

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	ticketvo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	uservo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/template"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/goroutine"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

type sentMessage struct {
	to, subject, body string
}

type recordingSink struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Notify(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{to: to, subject: subject, body: body})
	return nil
}

func (s *recordingSink) messages() []sentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentMessage(nil), s.sent...)
}

type mockNotificationRepo struct {
	created []*notification.Notification
	err     error
}

func (m *mockNotificationRepo) Create(_ context.Context, n *notification.Notification) error {
	if m.err != nil {
		return m.err
	}
	_ = n.SetID(uint(len(m.created) + 1))
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) List(context.Context, *uint) ([]*notification.Notification, error) {
	return m.created, nil
}

func (m *mockNotificationRepo) MarkAsRead(context.Context, uint) (*notification.Notification, error) {
	return nil, nil
}

func newRenderer(t *testing.T) *template.NotificationTemplateLoader {
	t.Helper()
	l := template.NewNotificationTemplateLoader("", logger.NewNopLogger())
	require.NoError(t, l.Load())
	return l
}

func newUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("alice@x.com", "hash", "Alice", "Smith", uservo.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, u.SetID(1))
	return u
}

func newTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Printer on fire", "", ticketvo.PriorityHigh, 1)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(42))
	return tk
}

func TestDispatcher_SendWelcome(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, newRenderer(t), logger.NewNopLogger())

	d.SendWelcome(context.Background(), newUser(t))

	msgs := sink.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "alice@x.com", msgs[0].to)
	assert.Equal(t, "Welcome to Support Ticketing System!", msgs[0].subject)
	assert.Contains(t, msgs[0].body, "Alice")
}

func TestDispatcher_SendNewTicket(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, newRenderer(t), logger.NewNopLogger())

	d.SendNewTicket(context.Background(), "alice@x.com", newTicket(t))

	msgs := sink.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "New Ticket Created - #42", msgs[0].subject)
	assert.Contains(t, msgs[0].body, "Printer on fire")
}

func TestDispatcher_SwallowsSinkErrors(t *testing.T) {
	sink := &recordingSink{err: stderrors.New("smtp down")}
	d := NewDispatcher(sink, newRenderer(t), logger.NewNopLogger())

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), "alice@x.com", "s", "b")
		d.SendWelcome(context.Background(), newUser(t))
	})
	assert.Empty(t, sink.messages())
}

func TestDispatcher_SkipsEmptyRecipient(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, newRenderer(t), logger.NewNopLogger())

	d.Dispatch(context.Background(), "  ", "s", "b")
	assert.Empty(t, sink.messages())
}

func TestDispatcher_Async(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink, newRenderer(t), logger.NewNopLogger(),
		WithAsync(goroutine.NewGroup(logger.NewNopLogger())))

	ctx, cancel := context.WithCancel(context.Background())
	d.SendNewTicket(ctx, "alice@x.com", newTicket(t))
	cancel()
	d.Wait()

	assert.Len(t, sink.messages(), 1)
}

func TestDispatcher_Recorder(t *testing.T) {
	repo := &mockNotificationRepo{}
	d := NewDispatcher(&recordingSink{}, newRenderer(t), logger.NewNopLogger(), WithRecorder(repo))

	d.SendWelcome(context.Background(), newUser(t))
	d.SendNewTicket(context.Background(), "alice@x.com", newTicket(t))

	require.Len(t, repo.created, 2)
	assert.Equal(t, vo.TypeWelcome, repo.created[0].Type())
	assert.Nil(t, repo.created[0].TicketID())
	assert.Equal(t, vo.TypeTicketCreated, repo.created[1].Type())
	assert.Equal(t, uint(1), repo.created[1].UserID())
	require.NotNil(t, repo.created[1].TicketID())
	assert.Equal(t, uint(42), *repo.created[1].TicketID())
}

func TestDispatcher_RecorderFailureIsSwallowed(t *testing.T) {
	sink := &recordingSink{}
	repo := &mockNotificationRepo{err: stderrors.New("db down")}
	d := NewDispatcher(sink, newRenderer(t), logger.NewNopLogger(), WithRecorder(repo))

	d.SendWelcome(context.Background(), newUser(t))
	assert.Len(t, sink.messages(), 1)
}

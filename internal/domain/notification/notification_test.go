package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification/valueobjects"
)

func TestNewNotification(t *testing.T) {
	ticketID := uint(5)
	n, err := NewNotification(1, vo.TypeTicketCreated, "New Ticket Created - #5", "body", &ticketID)
	require.NoError(t, err)

	assert.False(t, n.IsRead())
	assert.Equal(t, vo.TypeTicketCreated, n.Type())
	assert.Equal(t, uint(5), *n.TicketID())

	_, err = NewNotification(0, vo.TypeWelcome, "t", "m", nil)
	assert.Error(t, err)
	_, err = NewNotification(1, vo.NotificationType("sms"), "t", "m", nil)
	assert.Error(t, err)
	_, err = NewNotification(1, vo.TypeWelcome, " ", "m", nil)
	assert.Error(t, err)
}

func TestNotificationType_Label(t *testing.T) {
	assert.Equal(t, "Ticket Created", vo.TypeTicketCreated.Label())
	assert.Equal(t, "Welcome", vo.TypeWelcome.Label())
	assert.Len(t, vo.AllNotificationTypes(), 5)
}

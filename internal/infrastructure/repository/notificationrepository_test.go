package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/notification/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

func createTestNotification(t *testing.T, repo *NotificationRepository, userID uint, title string) *notification.Notification {
	t.Helper()

	n, err := notification.NewNotification(userID, vo.TypeTicketCreated, title, "body", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestNotificationRepository_List(t *testing.T) {
	repo := NewNotificationRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	createTestNotification(t, repo, 1, "one")
	createTestNotification(t, repo, 2, "two")
	createTestNotification(t, repo, 1, "three")

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "three", all[0].Title())

	userID := uint(1)
	mine, err := repo.List(ctx, &userID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, n := range mine {
		assert.Equal(t, uint(1), n.UserID())
		assert.False(t, n.IsRead())
	}
}

func TestNotificationRepository_MarkAsRead(t *testing.T) {
	repo := NewNotificationRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	n := createTestNotification(t, repo, 1, "ping")

	read, err := repo.MarkAsRead(ctx, n.ID())
	require.NoError(t, err)
	assert.True(t, read.IsRead())
	assert.Equal(t, vo.TypeTicketCreated, read.Type())

	again, err := repo.MarkAsRead(ctx, n.ID())
	require.NoError(t, err)
	assert.True(t, again.IsRead())

	_, err = repo.MarkAsRead(ctx, 999)
	assert.True(t, errors.IsNotFoundError(err))
}

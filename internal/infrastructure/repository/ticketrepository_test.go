package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	vo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/biztime"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

func ptr[T any](v T) *T { return &v }

func TestTicketRepository_CreateAndGet(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	created := createTestTicket(t, repo, "Printer jam", 1)
	require.NotZero(t, created.ID())

	found, err := repo.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, "Printer jam", found.Title())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.Equal(t, vo.PriorityMedium, found.Priority())
	assert.Nil(t, found.AssignedAgentID())
	assert.Nil(t, found.UpdatedAt())
	assert.Nil(t, found.ResolvedAt())

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_ListNewestFirst(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	empty, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		restore := biztime.SetClock(func() time.Time { return base.Add(time.Duration(i) * time.Minute) })
		createTestTicket(t, repo, title, 1)
		restore()
	}

	tickets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, "third", tickets[0].Title())
	assert.Equal(t, "first", tickets[2].Title())
}

func TestTicketRepository_UpdateCoalesces(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	tk := createTestTicket(t, repo, "VPN down", 1)

	updated, err := repo.Update(ctx, tk.ID(), ticket.Patch{
		Status:          ptr(vo.StatusInProgress),
		AssignedAgentID: ptr(uint(7)),
	})
	require.NoError(t, err)

	assert.Equal(t, vo.StatusInProgress, updated.Status())
	assert.Equal(t, uint(7), *updated.AssignedAgentID())
	assert.Equal(t, "VPN down", updated.Title())
	assert.Equal(t, "Test description", updated.Description())
	assert.Equal(t, vo.PriorityMedium, updated.Priority())
	require.NotNil(t, updated.UpdatedAt())

	// a patch without the agent keeps the assignment
	again, err := repo.Update(ctx, tk.ID(), ticket.Patch{Priority: ptr(vo.PriorityUrgent)})
	require.NoError(t, err)
	assert.Equal(t, vo.PriorityUrgent, again.Priority())
	assert.Equal(t, uint(7), *again.AssignedAgentID())
	assert.Nil(t, again.ResolvedAt())
}

func TestTicketRepository_UpdateStampsUpdatedAtOnNoOp(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Same title", 1)

	stamp := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time { return stamp })
	defer restore()

	updated, err := repo.Update(ctx, tk.ID(), ticket.Patch{Title: ptr("Same title")})
	require.NoError(t, err)
	require.NotNil(t, updated.UpdatedAt())
	assert.True(t, stamp.Equal(*updated.UpdatedAt()))
}

func TestTicketRepository_UpdateMissing(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())

	_, err := repo.Update(context.Background(), 999, ticket.Patch{Title: ptr("x")})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_Delete(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Disposable", 1)

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	_, err := repo.GetByID(ctx, tk.ID())
	assert.True(t, errors.IsNotFoundError(err))

	err = repo.Delete(ctx, tk.ID())
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_Comments(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())
	comments := repo.Comments()
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Needs discussion", 1)
	other := createTestTicket(t, repo, "Unrelated", 1)

	for _, content := range []string{"first", "second"} {
		c, err := ticket.NewComment(tk.ID(), 1, content)
		require.NoError(t, err)
		require.NoError(t, comments.Create(ctx, c))
		assert.NotZero(t, c.ID())
	}
	c, err := ticket.NewComment(other.ID(), 2, "elsewhere")
	require.NoError(t, err)
	require.NoError(t, comments.Create(ctx, c))

	list, err := comments.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content())
	assert.Equal(t, "second", list[1].Content())

	none, err := comments.ListByTicketID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTicketRepository_CommentOnMissingTicket(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), logger.NewNopLogger())

	c, err := ticket.NewComment(999, 1, "orphan")
	require.NoError(t, err)

	err = repo.Comments().Create(context.Background(), c)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_DeleteCascadesComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	tk := createTestTicket(t, repo, "Short lived", 1)
	c, err := ticket.NewComment(tk.ID(), 1, "bye")
	require.NoError(t, err)
	require.NoError(t, repo.Comments().Create(ctx, c))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	left, err := repo.Comments().ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCoalesceColumns_PostgresCastsEnums(t *testing.T) {
	cols := coalesceColumns("postgres", ticket.Patch{})
	assert.Contains(t, cols, "updated_at")
	assert.Len(t, cols, 6)

	status := cols["status"]
	assert.Contains(t, fmtExpr(status), "ticket_status")

	plain := coalesceColumns("sqlite", ticket.Patch{})
	assert.NotContains(t, fmtExpr(plain["priority"]), "CAST")
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket"
	ticketvo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/ticket/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/user"
	uservo "github.com/Harekrushna7138/ticket-service-backend/internal/domain/user/valueobjects"
	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/persistence/migrations"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestUserEntity(t *testing.T, email string) *user.User {
	t.Helper()

	u, err := user.NewUser(email, "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA", "Test", "User", uservo.RoleCustomer)
	require.NoError(t, err)
	return u
}

func createTestUser(t *testing.T, repo *UserRepository, email string) *user.User {
	t.Helper()

	u := createTestUserEntity(t, email)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createTestTicket(t *testing.T, repo *TicketRepository, title string, customerID uint) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(title, "Test description", ticketvo.PriorityMedium, customerID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tk))
	return tk
}

func fmtExpr(v interface{}) string {
	if expr, ok := v.(clause.Expr); ok {
		return expr.SQL
	}
	return ""
}

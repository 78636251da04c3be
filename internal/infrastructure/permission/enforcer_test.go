package permission

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Harekrushna7138/ticket-service-backend/internal/domain/permission"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) *Enforcer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	e, err := NewEnforcer(db, "", logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, InitDefaultPermissions(e, logger.NewNopLogger()))
	return e
}

func TestEnforcer_DefaultPolicies(t *testing.T) {
	e := newTestEnforcer(t)

	tests := []struct {
		role, resource, action string
		want                   bool
	}{
		{"admin", permission.ResourceTicket, permission.ActionDelete, true},
		{"admin", permission.ResourceUser, permission.ActionRead, true},
		{"agent", permission.ResourceTicket, permission.ActionUpdate, true},
		{"agent", permission.ResourceTicket, permission.ActionDelete, false},
		{"agent", permission.ResourceUser, permission.ActionRead, false},
		{"customer", permission.ResourceTicket, permission.ActionCreate, true},
		{"customer", permission.ResourceTicket, permission.ActionUpdate, false},
		{"customer", permission.ResourceComment, permission.ActionCreate, true},
		{"customer", permission.ResourceNotification, permission.ActionUpdate, true},
		{"", permission.ResourceTicket, permission.ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcer_InitIsIdempotent(t *testing.T) {
	e := newTestEnforcer(t)
	require.NoError(t, InitDefaultPermissions(e, logger.NewNopLogger()))

	require.NoError(t, e.LoadPolicy())
	allowed, err := e.Enforce("customer", permission.ResourceTicket, permission.ActionRead)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestEnforcer_AddRemovePolicy(t *testing.T) {
	e := newTestEnforcer(t)

	require.NoError(t, e.AddPolicy("agent", permission.ResourceTicket, permission.ActionDelete))
	allowed, err := e.Enforce("agent", permission.ResourceTicket, permission.ActionDelete)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.NoError(t, e.RemovePolicy("agent", permission.ResourceTicket, permission.ActionDelete))
	allowed, err = e.Enforce("agent", permission.ResourceTicket, permission.ActionDelete)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestLoadModel(t *testing.T) {
	_, err := loadModel(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "model.conf")
	require.NoError(t, os.WriteFile(path, []byte(defaultModel), 0o600))
	_, err = loadModel(path)
	assert.NoError(t, err)
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/config"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

func TestOpen_SQLiteMemory(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:       DriverSQLite,
		DSN:          "file::memory:",
		MaxOpenConns: 5,
		MaxIdleConns: 5,
	}

	db, err := Open(cfg, logger.NewNopLogger())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"}, logger.NewNopLogger())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestInitGetClose(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: DriverSQLite, DSN: "file::memory:", MaxOpenConns: 1}

	require.NoError(t, Init(cfg, logger.NewNopLogger()))
	assert.NotNil(t, Get())

	require.NoError(t, Close())
	assert.Nil(t, Get())
	assert.NoError(t, Close())
}

type recordingLogger struct {
	logger.Interface
	errors, warns, debugs int
}

func (r *recordingLogger) Errorw(string, ...interface{}) { r.errors++ }
func (r *recordingLogger) Warnw(string, ...interface{})  { r.warns++ }
func (r *recordingLogger) Debugw(string, ...interface{}) { r.debugs++ }

func TestFilteredLogger(t *testing.T) {
	rec := &recordingLogger{Interface: logger.NewNopLogger()}
	l := &filteredLogger{log: rec}

	l.Printf("%s", "SELECT VERSION()")
	l.Printf("%s [error] relation does not exist", "tickets.go:10")
	l.Printf("%s SLOW SQL >= 200ms", "tickets.go:12")
	l.Printf("%s", "SELECT * FROM tickets")

	assert.Equal(t, 1, rec.errors)
	assert.Equal(t, 1, rec.warns)
	assert.Equal(t, 1, rec.debugs)
}

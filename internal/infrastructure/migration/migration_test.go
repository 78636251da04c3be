package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewManager_SelectsStrategy(t *testing.T) {
	tests := []struct {
		driver, tool string
		want         string
	}{
		{"postgres", "", "goose"},
		{"postgres", ToolGoose, "goose"},
		{"postgres", ToolGolangMigrate, "golang_migrate"},
		{"sqlite", ToolGolangMigrate, "gorm_auto_migrate"},
		{"mysql", "", "gorm_auto_migrate"},
	}

	for _, tt := range tests {
		t.Run(tt.driver+"/"+tt.tool, func(t *testing.T) {
			m, err := NewManager(tt.driver, tt.tool)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.GetStrategy().GetName())
		})
	}

	_, err := NewManager("postgres", "flyway")
	assert.Error(t, err)
}

func TestManager_AutoMigrateSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	m, err := NewManager("sqlite", "")
	require.NoError(t, err)
	require.NoError(t, m.Migrate(db))

	for _, table := range []string{"users", "tickets", "comments", "notifications"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	assert.Error(t, m.Down(db, 1))
	_, err = m.Status(db)
	assert.Error(t, err)
}

func TestEmbeddedScripts_Paired(t *testing.T) {
	gooseFiles, err := fs.Glob(gooseScripts, gooseDir+"/*.sql")
	require.NoError(t, err)
	upFiles, err := fs.Glob(migrateScripts, migrateDir+"/*.up.sql")
	require.NoError(t, err)
	downFiles, err := fs.Glob(migrateScripts, migrateDir+"/*.down.sql")
	require.NoError(t, err)

	assert.NotEmpty(t, gooseFiles)
	assert.Len(t, upFiles, len(gooseFiles))
	assert.Len(t, downFiles, len(upFiles))

	for _, f := range gooseFiles {
		content, err := fs.ReadFile(gooseScripts, f)
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", f)
		assert.Contains(t, string(content), "-- +goose Down", f)
	}

	core, err := fs.ReadFile(migrateScripts, migrateDir+"/000001_create_core_tables.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(core), "CREATE TYPE ticket_status AS ENUM ('open', 'in_progress', 'resolved', 'closed')")
	assert.Contains(t, string(core), "ON DELETE CASCADE")
}

func TestGenerator_CreateMigration(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(dir)
	g.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	paths, err := g.CreateMigration(ToolGolangMigrate, "add_ticket_tags")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "migrate", "20260102030405_add_ticket_tags.up.sql"), paths[0])
	assert.True(t, strings.HasSuffix(paths[1], ".down.sql"))
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}

	gooseFiles, err := g.CreateMigration(ToolGoose, "add_sla")
	require.NoError(t, err)
	require.Len(t, gooseFiles, 1)
	assert.True(t, strings.HasSuffix(gooseFiles[0], "_add_sla.sql"))

	_, err = g.CreateMigration(ToolGoose, "Add SLA")
	assert.Error(t, err)
	_, err = g.CreateMigration("flyway", "add_sla")
	assert.Error(t, err)
}

package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator creates new migration files in the scripts source tree. They are
// picked up by the embedded file systems on the next build.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.WithComponent("migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes a new script for tool and returns the created paths.
func (g *Generator) CreateMigration(tool, name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("migration name must be snake_case, got %q", name)
	}

	switch tool {
	case ToolGoose, "":
		return g.createGoose(name)
	case ToolGolangMigrate:
		return g.createPair(name)
	default:
		return nil, fmt.Errorf("unknown migration tool %q", tool)
	}
}

func (g *Generator) createGoose(name string) ([]string, error) {
	dir := filepath.Join(g.scriptsPath, "goose")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}

	before, _ := filepath.Glob(filepath.Join(dir, "*.sql"))

	goose.SetSequential(true)
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return nil, fmt.Errorf("failed to create migration: %w", err)
	}

	after, _ := filepath.Glob(filepath.Join(dir, "*.sql"))
	created := newPaths(before, after)

	g.logger.Infow("migration created", "tool", ToolGoose, "files", created)
	return created, nil
}

func (g *Generator) createPair(name string) ([]string, error) {
	dir := filepath.Join(g.scriptsPath, "migrate")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scripts directory: %w", err)
	}

	stamp := g.now().UTC().Format("20060102150405")
	upPath := filepath.Join(dir, fmt.Sprintf("%s_%s.up.sql", stamp, name))
	downPath := filepath.Join(dir, fmt.Sprintf("%s_%s.down.sql", stamp, name))

	created := g.now().UTC().Format("2006-01-02 15:04:05")
	if err := os.WriteFile(upPath, []byte(fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, created)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(fmt.Sprintf("-- Rollback: %s\n-- Created: %s\n\n", name, created)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration created", "tool", ToolGolangMigrate, "up_file", upPath, "down_file", downPath)
	return []string{upPath, downPath}, nil
}

func newPaths(before, after []string) []string {
	seen := make(map[string]struct{}, len(before))
	for _, p := range before {
		seen[p] = struct{}{}
	}

	var created []string
	for _, p := range after {
		if _, ok := seen[p]; !ok {
			created = append(created, p)
		}
	}
	return created
}

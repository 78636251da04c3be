package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
)

const (
	ToolGoose         = "goose"
	ToolGolangMigrate = "golang-migrate"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy for driver. Postgres runs the versioned SQL
// scripts with tool; every other driver uses gorm AutoMigrate.
func NewManager(driver, tool string) (*Manager, error) {
	strategy, err := strategyFor(driver, tool)
	if err != nil {
		return nil, err
	}
	return NewManagerWithStrategy(strategy), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.WithComponent("migration.manager"),
	}
}

func strategyFor(driver, tool string) (Strategy, error) {
	if driver != "postgres" && driver != "" {
		return NewGormAutoMigrateStrategy(), nil
	}

	switch tool {
	case ToolGoose, "":
		return NewGooseStrategy(), nil
	case ToolGolangMigrate:
		return NewGolangMigrateStrategy(), nil
	default:
		return nil, fmt.Errorf("unknown migration tool %q", tool)
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// Down rolls back steps versions. It needs a versioned strategy.
func (m *Manager) Down(db *gorm.DB, steps int) error {
	versioned, ok := m.strategy.(VersionedStrategy)
	if !ok {
		return fmt.Errorf("strategy %s does not support rollback", m.strategy.GetName())
	}
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	return versioned.MigrateDown(db, steps)
}

// Status reports the recorded schema version. It needs a versioned strategy.
func (m *Manager) Status(db *gorm.DB) (Status, error) {
	versioned, ok := m.strategy.(VersionedStrategy)
	if !ok {
		return Status{}, fmt.Errorf("strategy %s does not track versions", m.strategy.GetName())
	}
	return versioned.Status(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"gymkeep/internal/shared/constants"
	"gymkeep/internal/shared/logger"
)

// Manager runs schema migrations with an environment-appropriate strategy:
// automigrate for development, versioned SQL scripts everywhere else.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

func NewManager(environment string) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case constants.EnvDevelopment, constants.EnvTest:
		strategy = NewGormAutoMigrateStrategy()
	default:
		strategy = NewGolangMigrateStrategy()
	}

	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

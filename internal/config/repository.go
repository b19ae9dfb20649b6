package config

import (
	"fmt"
	"os"

	"todo-tracker/internal/repository/sqlite"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(config.GetDatabasePath(), sqlite.WithQueryTimeout(config.Database.QueryTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// RollbackDatabase reverts the newest schema migration of the configured
// database and returns its version, or 0 when none was applied.
func RollbackDatabase(config *Config) (int, error) {
	if _, err := os.Stat(config.GetDatabasePath()); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to inspect database: %w", err)
	}
	return sqlite.RollbackLastMigration(config.GetDatabasePath())
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}

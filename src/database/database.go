package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"personnel-api/src/logger"
)

// Connect opens the gorm connection for the configured driver. Postgres is
// the production store; sqlite serves local development.
func Connect(driver, dsn string) (*gorm.DB, error) {
	log := logger.Default()
	log.Infof("Establishing %s database connection...", driver)

	var db *gorm.DB
	var err error

	switch driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot establish database connection: %w", err)
	}

	log.Info("Database connection established successfully.")
	return db, nil
}

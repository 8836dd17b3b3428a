package database

import (
	"gorm.io/gorm"

	"personnel-api/src/audit"
	"personnel-api/src/logger"
	"personnel-api/src/model"
)

func AutoMigrate(db *gorm.DB) error {
	migrationLogger := logger.Default()
	migrationLogger.Info("Running migrations for tables...")

	err := db.AutoMigrate(
		&model.Persona{},
		&model.Director{},
		&model.Coordinador{},
		&model.Abogado{},
		&model.Medico{},
		&model.Psicologo{},
		&model.TrabajadorSocial{},
		&audit.Entry{},
	)
	if err != nil {
		return err
	}

	migrationLogger.Info("All tables created (or already exist).")
	return nil
}

package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"personnel-api/src/credentials"
	"personnel-api/src/logger"
	"personnel-api/src/model"
)

// Seed identity of the administrative account created on first run.
// The password should be overridden through configuration anywhere the
// service faces real users.
const (
	DefaultDirectorCURP   = "ADMIN000000000000"
	DefaultDirectorCorreo = "admin@fundacion.com"

	// A bcrypt digest is 60 bytes; anything shorter in the contrasena
	// column is a leftover from a previous hashing scheme and gets
	// rewritten so the account stays usable.
	minCredentialHashLen = 60
)

// EnsureDefaultDirector guarantees the director table is never empty on
// startup so the registration workflow is always reachable. It is
// idempotent: an existing director is only touched when its stored hash is
// malformed.
func EnsureDefaultDirector(db *gorm.DB, hasher credentials.PasswordHasher, correo, password string) error {
	log := logger.Default()

	if correo == "" {
		correo = DefaultDirectorCorreo
	}

	var count int64
	if err := db.Model(&model.Director{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}

		persona := model.Persona{
			CURP:            DefaultDirectorCURP,
			PrimerNombre:    "Admin",
			ApellidoPaterno: "Director",
			ApellidoMaterno: "Sistema",
			Sexo:            "Otro",
			FechaNacimiento: "2000-01-01",
			Telefono:        "5555555555",
			Correo:          correo,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&persona).Error; err != nil {
			return err
		}

		director := model.Director{
			CURP:         DefaultDirectorCURP,
			Contrasena:   hash,
			FechaIngreso: time.Now(),
			Estado:       model.EstadoActivo,
		}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&director).Error; err != nil {
			return err
		}

		log.Info("Default director created successfully")
		return nil
	}

	// Director exists; repair the stored hash when it cannot possibly be a
	// valid digest.
	var director model.Director
	err := db.Where("curp = ?", DefaultDirectorCURP).First(&director).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if len(director.Contrasena) < minCredentialHashLen {
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}
		if err := db.Model(&model.Director{}).
			Where("curp = ?", DefaultDirectorCURP).
			Update("contrasena", hash).Error; err != nil {
			return err
		}
		log.Info("Rewrote malformed default director hash")
	}

	return nil
}

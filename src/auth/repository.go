package auth

import (
	"gorm.io/gorm"

	"personnel-api/src/model"
)

type Repository interface {
	PersonaByCorreo(correo string) (model.Persona, error)
	ResolveRole(curp string) (model.RoleKind, bool, error)
	CredentialHash(kind model.RoleKind, curp string) (string, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) PersonaByCorreo(correo string) (model.Persona, error) {
	var persona model.Persona
	err := r.db.Where("correo = ?", correo).First(&persona).Error
	return persona, err
}

// ResolveRole probes each role table in the fixed scan order and returns
// the first one containing the CURP. A CURP in no table returns ok=false;
// a CURP (invalidly) in several resolves to the earliest match. Read-only,
// no retries: a datastore failure propagates to the caller.
func (r *gormRepository) ResolveRole(curp string) (model.RoleKind, bool, error) {
	for _, kind := range model.RoleScanOrder {
		var count int64
		err := r.db.Table(kind.TableName()).Where("curp = ?", curp).Count(&count).Error
		if err != nil {
			return 0, false, err
		}
		if count > 0 {
			return kind, true, nil
		}
	}
	return 0, false, nil
}

func (r *gormRepository) CredentialHash(kind model.RoleKind, curp string) (string, error) {
	var row struct {
		Contrasena string
	}
	err := r.db.Table(kind.TableName()).
		Select("contrasena").
		Where("curp = ?", curp).
		Take(&row).Error
	return row.Contrasena, err
}

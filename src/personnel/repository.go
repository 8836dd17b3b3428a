package personnel

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"personnel-api/src/model"
)

type Repository interface {
	UpsertPersona(persona model.Persona) error
	UpsertRole(kind model.RoleKind, cedula, curp, especialidad, contrasenaHash string) error
	ListPersonas() ([]model.Persona, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

// UpsertPersona inserts or updates in place on the CURP key. Registering
// the same CURP twice overwrites the personal data instead of failing on a
// duplicate key; the datastore's conflict clause is the only concurrency
// control here.
func (r *gormRepository) UpsertPersona(persona model.Persona) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "curp"}},
		UpdateAll: true,
	}).Create(&persona).Error
}

func (r *gormRepository) UpsertRole(kind model.RoleKind, cedula, curp, especialidad, contrasenaHash string) error {
	onCedula := func(updated ...string) clause.OnConflict {
		return clause.OnConflict{
			Columns:   []clause.Column{{Name: "cedula"}},
			DoUpdates: clause.AssignmentColumns(updated),
		}
	}

	switch kind {
	case model.RoleAbogado:
		row := model.Abogado{
			Cedula:       cedula,
			CURP:         curp,
			Especialidad: especialidad,
			Contrasena:   contrasenaHash,
			Estado:       model.EstadoActivo,
		}
		return r.db.Clauses(onCedula("especialidad", "contrasena")).Create(&row).Error

	case model.RoleMedico:
		row := model.Medico{
			Cedula:       cedula,
			CURP:         curp,
			Especialidad: especialidad,
			Contrasena:   contrasenaHash,
			Estado:       model.EstadoActivo,
		}
		return r.db.Clauses(onCedula("especialidad", "contrasena")).Create(&row).Error

	case model.RolePsicologo:
		row := model.Psicologo{
			Cedula:             cedula,
			CURP:               curp,
			EnfoqueTerapeutico: especialidad,
			Contrasena:         contrasenaHash,
			Estado:             model.EstadoActivo,
		}
		return r.db.Clauses(onCedula("enfoque_terapeutico", "contrasena")).Create(&row).Error

	case model.RoleTrabajadorSocial:
		row := model.TrabajadorSocial{
			Cedula:     cedula,
			CURP:       curp,
			Contrasena: contrasenaHash,
			Estado:     model.EstadoActivo,
		}
		return r.db.Clauses(onCedula("contrasena")).Create(&row).Error
	}

	return fmt.Errorf("role %q cannot be created through registration", kind)
}

func (r *gormRepository) ListPersonas() ([]model.Persona, error) {
	var personas []model.Persona
	err := r.db.Order("apellido_paterno, primer_nombre").Find(&personas).Error
	return personas, err
}

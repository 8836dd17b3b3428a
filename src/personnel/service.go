package personnel

import (
	"strings"

	"personnel-api/src/credentials"
	"personnel-api/src/model"
)

// Fallback credential when the form leaves the password blank; the employee
// is expected to change it on first login.
const defaultTemporaryPassword = "temporal123"

// RegistrationForm carries the raw form fields of the registration page.
// Normalization (trims, case) happens in Register, not at the HTTP edge.
type RegistrationForm struct {
	CURP            string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	RFC             string
	Sexo            string
	FechaNacimiento string
	Telefono        string
	Correo          string
	Calle           string
	Cedula          string
	Rol             string
	Especialidad    string
	Contrasena      string
}

type Service struct {
	repository Repository
	hasher     credentials.PasswordHasher
}

func NewService(repository Repository, hasher credentials.PasswordHasher) *Service {
	return &Service{repository: repository, hasher: hasher}
}

// Register validates the form, upserts the persona on its CURP and upserts
// the role-specific row. All validation runs before any write.
func (s *Service) Register(form RegistrationForm) error {
	curp := strings.ToUpper(strings.TrimSpace(form.CURP))
	rfc := strings.ToUpper(strings.TrimSpace(form.RFC))
	correo := strings.ToLower(strings.TrimSpace(form.Correo))
	telefono := strings.TrimSpace(form.Telefono)

	if !ValidarCURP(curp) {
		return &ValidationError{Field: "curp", Message: "CURP inválido (18 caracteres)"}
	}
	if !ValidarRFC(rfc) {
		return &ValidationError{Field: "rfc", Message: "RFC inválido (10-13 caracteres)"}
	}
	if !ValidarTelefono(telefono) {
		return &ValidationError{Field: "telefono", Message: "Teléfono inválido (7-15 dígitos)"}
	}

	kind, ok := model.RoleKindByName(strings.ToLower(strings.TrimSpace(form.Rol)))
	if !ok || !kind.Registrable() {
		return &ValidationError{Field: "rol", Message: "Rol desconocido"}
	}

	persona := model.Persona{
		CURP:            curp,
		RFC:             rfc,
		PrimerNombre:    strings.TrimSpace(form.Nombre),
		ApellidoPaterno: strings.TrimSpace(form.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(form.ApellidoMaterno),
		Sexo:            form.Sexo,
		FechaNacimiento: form.FechaNacimiento,
		Calle:           strings.TrimSpace(form.Calle),
		Telefono:        telefono,
		Correo:          correo,
	}
	if err := s.repository.UpsertPersona(persona); err != nil {
		return err
	}

	password := strings.TrimSpace(form.Contrasena)
	if password == "" {
		password = defaultTemporaryPassword
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	return s.repository.UpsertRole(kind, strings.TrimSpace(form.Cedula), curp, strings.TrimSpace(form.Especialidad), hash)
}

func (s *Service) ListPersonas() ([]model.Persona, error) {
	return s.repository.ListPersonas()
}

package auth

import (
	"errors"

	"gorm.io/gorm"

	"personnel-api/src/credentials"
	"personnel-api/src/model"
)

// Authentication outcomes. An unknown correo and a wrong password are
// deliberately the same error so login responses cannot be used to
// enumerate registered addresses. A persona without any role row gets a
// distinct message: that is an account-state signal, not a credential one,
// and the distinction is kept on purpose.
var (
	ErrInvalidCredentials = errors.New("correo o contraseña incorrectos")
	ErrNoRoleAssigned     = errors.New("usuario no tiene rol asignado")
	ErrDataAccess         = errors.New("error al acceder a datos de usuario")
)

// Login is the result of a successful authentication: the identity code and
// the role resolved for it.
type Login struct {
	CURP string
	Role model.RoleKind
}

type Service struct {
	repository Repository
	hasher     credentials.PasswordHasher
}

func NewService(repository Repository, hasher credentials.PasswordHasher) *Service {
	return &Service{repository: repository, hasher: hasher}
}

// Authenticate runs the credential lookup cascade: persona by correo, role
// resolution across the role tables, stored hash fetch, then the
// constant-time password check. No lockout or attempt counting exists.
func (s *Service) Authenticate(correo, password string) (Login, error) {
	persona, err := s.repository.PersonaByCorreo(correo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Login{}, ErrInvalidCredentials
	}
	if err != nil {
		return Login{}, err
	}

	kind, ok, err := s.repository.ResolveRole(persona.CURP)
	if err != nil {
		return Login{}, err
	}
	if !ok {
		return Login{}, ErrNoRoleAssigned
	}

	hash, err := s.repository.CredentialHash(kind, persona.CURP)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// The role probe just matched, so the row vanished mid-login or the
		// table is inconsistent.
		return Login{}, ErrDataAccess
	}
	if err != nil {
		return Login{}, err
	}

	if !s.hasher.Check(password, hash) {
		return Login{}, ErrInvalidCredentials
	}

	return Login{CURP: persona.CURP, Role: kind}, nil
}

// RedirectPath is the post-login landing page: directors go straight to the
// registration workflow, everyone else to the personnel listing.
func RedirectPath(role model.RoleKind) string {
	if role == model.RoleDirector {
		return "/registrar-empleado"
	}
	return "/consultar-personal"
}

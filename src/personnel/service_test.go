package personnel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"personnel-api/src/credentials"
	"personnel-api/src/database"
	"personnel-api/src/model"
)

func validForm() RegistrationForm {
	return RegistrationForm{
		CURP:            "gomc900513hdfrrl09",
		Nombre:          "Carla",
		ApellidoPaterno: "Gómez",
		ApellidoMaterno: "Martínez",
		RFC:             "gomc900513ab1",
		Sexo:            "Mujer",
		FechaNacimiento: "1990-05-13",
		Telefono:        "5512345678",
		Correo:          "Carla.Gomez@Fundacion.com",
		Calle:           "Av. Reforma 100",
		Cedula:          "CED-300",
		Rol:             "abogado",
		Especialidad:    "Familiar",
		Contrasena:      "secreto1",
	}
}

func newTestService(t *testing.T) (*Service, Repository) {
	t.Helper()
	db := database.SetupTestDB(t)
	hasher := &credentials.BcryptHasher{Cost: bcrypt.MinCost}
	repo := NewRepository(db)
	return NewService(repo, hasher), repo
}

func TestRegisterNormalizesAndPersists(t *testing.T) {
	service, repo := newTestService(t)

	require.NoError(t, service.Register(validForm()))

	personas, err := repo.ListPersonas()
	require.NoError(t, err)
	require.Len(t, personas, 1)

	persona := personas[0]
	assert.Equal(t, "GOMC900513HDFRRL09", persona.CURP)
	assert.Equal(t, "GOMC900513AB1", persona.RFC)
	assert.Equal(t, "carla.gomez@fundacion.com", persona.Correo)
}

func TestRegisterValidationErrorsNameField(t *testing.T) {
	service, _ := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*RegistrationForm)
		field  string
	}{
		{"bad curp", func(f *RegistrationForm) { f.CURP = "corto" }, "curp"},
		{"bad rfc", func(f *RegistrationForm) { f.RFC = "corto" }, "rfc"},
		{"bad telefono", func(f *RegistrationForm) { f.Telefono = "12-34" }, "telefono"},
		{"unknown rol", func(f *RegistrationForm) { f.Rol = "contador" }, "rol"},
		{"non-registrable rol", func(f *RegistrationForm) { f.Rol = "director" }, "rol"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			err := service.Register(form)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRegisterSameCURPTwiceUpdatesInPlace(t *testing.T) {
	service, repo := newTestService(t)

	require.NoError(t, service.Register(validForm()))

	updated := validForm()
	updated.Telefono = "5598765432"
	updated.Calle = "Calle Nueva 5"
	require.NoError(t, service.Register(updated))

	personas, err := repo.ListPersonas()
	require.NoError(t, err)
	require.Len(t, personas, 1, "upsert must update, not duplicate")
	assert.Equal(t, "5598765432", personas[0].Telefono)
	assert.Equal(t, "Calle Nueva 5", personas[0].Calle)
}

func TestRegisterBlankPasswordGetsTemporaryCredential(t *testing.T) {
	db := database.SetupTestDB(t)
	hasher := &credentials.BcryptHasher{Cost: bcrypt.MinCost}
	service := NewService(NewRepository(db), hasher)

	form := validForm()
	form.Contrasena = "  "
	require.NoError(t, service.Register(form))

	var abogado model.Abogado
	require.NoError(t, db.Where("curp = ?", "GOMC900513HDFRRL09").First(&abogado).Error)
	assert.True(t, hasher.Check(defaultTemporaryPassword, abogado.Contrasena))
	assert.Equal(t, model.EstadoActivo, abogado.Estado)
}

func TestRegisterPsicologoStoresEnfoque(t *testing.T) {
	db := database.SetupTestDB(t)
	hasher := &credentials.BcryptHasher{Cost: bcrypt.MinCost}
	service := NewService(NewRepository(db), hasher)

	form := validForm()
	form.Rol = "psicologo"
	form.Especialidad = "Cognitivo-conductual"
	require.NoError(t, service.Register(form))

	var psicologo model.Psicologo
	require.NoError(t, db.Where("curp = ?", "GOMC900513HDFRRL09").First(&psicologo).Error)
	assert.Equal(t, "Cognitivo-conductual", psicologo.EnfoqueTerapeutico)
}

func TestRegisterValidationRunsBeforeAnyWrite(t *testing.T) {
	service, repo := newTestService(t)

	form := validForm()
	form.Telefono = "bad"
	require.Error(t, service.Register(form))

	personas, err := repo.ListPersonas()
	require.NoError(t, err)
	assert.Empty(t, personas)
}

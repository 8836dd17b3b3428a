package model

// Persona is the identity record every employee has, keyed by CURP
// (the 18-character national identity code). Role tables reference it
// through the same key.
type Persona struct {
	CURP            string `gorm:"column:curp;primaryKey;size:18"`
	RFC             string `gorm:"column:rfc;size:13"`
	PrimerNombre    string `gorm:"not null"`
	SegundoNombre   string
	ApellidoPaterno string `gorm:"not null"`
	ApellidoMaterno string
	Sexo            string `gorm:"size:10"`
	FechaNacimiento string `gorm:"size:10"` // YYYY-MM-DD as submitted by the form
	Calle           string
	Telefono        string `gorm:"size:15"`
	Correo          string `gorm:"index;size:255"` // login lookup key
}

func (Persona) TableName() string {
	return "persona"
}

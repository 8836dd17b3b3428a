package model

import "time"

// Role table rows. Every table shares curp (unique reference to persona),
// the hashed contrasena, and an estado flag; the rest is role-specific.

const (
	EstadoActivo   = "Activo"
	EstadoInactivo = "Inactivo"
)

type Director struct {
	CURP         string `gorm:"column:curp;primaryKey;size:18"`
	Contrasena   string `gorm:"size:255;not null"`
	FechaIngreso time.Time
	Estado       string `gorm:"size:20;not null"`
}

func (Director) TableName() string { return "director" }

type Coordinador struct {
	Cedula       string `gorm:"primaryKey;size:20"`
	CURP         string `gorm:"column:curp;uniqueIndex;size:18;not null"`
	Contrasena   string `gorm:"size:255;not null"`
	FechaIngreso time.Time
	Estado       string `gorm:"size:20;not null"`
}

func (Coordinador) TableName() string { return "coordinador" }

type Abogado struct {
	Cedula       string `gorm:"primaryKey;size:20"`
	CURP         string `gorm:"column:curp;uniqueIndex;size:18;not null"`
	Especialidad string
	Contrasena   string `gorm:"size:255;not null"`
	Estado       string `gorm:"size:20;not null"`
}

func (Abogado) TableName() string { return "abogado" }

type Medico struct {
	Cedula       string `gorm:"primaryKey;size:20"`
	CURP         string `gorm:"column:curp;uniqueIndex;size:18;not null"`
	Especialidad string
	Contrasena   string `gorm:"size:255;not null"`
	Estado       string `gorm:"size:20;not null"`
}

func (Medico) TableName() string { return "medico" }

type Psicologo struct {
	Cedula             string `gorm:"primaryKey;size:20"`
	CURP               string `gorm:"column:curp;uniqueIndex;size:18;not null"`
	EnfoqueTerapeutico string
	Contrasena         string `gorm:"size:255;not null"`
	Estado             string `gorm:"size:20;not null"`
}

func (Psicologo) TableName() string { return "psicologo" }

type TrabajadorSocial struct {
	Cedula     string `gorm:"primaryKey;size:20"`
	CURP       string `gorm:"column:curp;uniqueIndex;size:18;not null"`
	Contrasena string `gorm:"size:255;not null"`
	Estado     string `gorm:"size:20;not null"`
}

func (TrabajadorSocial) TableName() string { return "trabajadorsocial" }

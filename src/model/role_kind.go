package model

// RoleKind is the closed set of professional categories. Each role lives in
// its own table; an employee's CURP is expected to appear in at most one of
// them. The kind carries the table name as data so role resolution can probe
// tables without string interpolation at call sites.
type RoleKind int

const (
	RoleDirector RoleKind = iota
	RoleCoordinador
	RoleAbogado
	RoleMedico
	RolePsicologo
	RoleTrabajadorSocial
)

// RoleScanOrder is the fixed probe order for role resolution. The first
// table containing a CURP wins; a CURP erroneously present in several role
// tables resolves to the earliest entry here.
var RoleScanOrder = []RoleKind{
	RoleDirector,
	RoleCoordinador,
	RoleAbogado,
	RoleMedico,
	RolePsicologo,
	RoleTrabajadorSocial,
}

var roleNames = map[RoleKind]string{
	RoleDirector:         "director",
	RoleCoordinador:      "coordinador",
	RoleAbogado:          "abogado",
	RoleMedico:           "medico",
	RolePsicologo:        "psicologo",
	RoleTrabajadorSocial: "trabajadorsocial",
}

func (k RoleKind) String() string {
	return roleNames[k]
}

// TableName is the relational table holding this role's rows.
func (k RoleKind) TableName() string {
	return roleNames[k]
}

// RoleKindByName maps a form value back to its kind.
func RoleKindByName(name string) (RoleKind, bool) {
	for kind, n := range roleNames {
		if n == name {
			return kind, true
		}
	}
	return 0, false
}

// Registrable reports whether the registration form may create this role.
// Directors and coordinators are provisioned administratively, not through
// the employee registration workflow.
func (k RoleKind) Registrable() bool {
	switch k {
	case RoleAbogado, RoleMedico, RolePsicologo, RoleTrabajadorSocial:
		return true
	}
	return false
}

package audit

import "time"

// Entry is one append-only audit record: who did what to whom. Written on
// login outcomes, logouts and employee registrations.
type Entry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor     string    `gorm:"size:18;index" json:"actor"` // CURP, empty for failed logins
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Detail    string    `gorm:"type:text" json:"detail"`
	Timestamp time.Time `gorm:"not null;index" json:"timestamp"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string {
	return "audit_entries"
}

const (
	ActionLogin        = "login"
	ActionLoginFailed  = "login_failed"
	ActionLogout       = "logout"
	ActionRegistration = "registro_empleado"
)

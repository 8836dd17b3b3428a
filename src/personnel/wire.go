package personnel

import (
	"gorm.io/gorm"

	"personnel-api/src/audit"
	"personnel-api/src/credentials"
)

func Build(db *gorm.DB, hasher credentials.PasswordHasher, recorder *audit.Recorder) *Handler {
	repo := NewRepository(db)
	service := NewService(repo, hasher)
	return NewHandler(service, recorder)
}

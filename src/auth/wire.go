package auth

import (
	"gorm.io/gorm"

	"personnel-api/src/audit"
	"personnel-api/src/credentials"
	"personnel-api/src/session"
)

func Build(db *gorm.DB, sessions session.Store, hasher credentials.PasswordHasher, recorder *audit.Recorder) *Handler {
	repo := NewRepository(db)
	service := NewService(repo, hasher)
	return NewHandler(service, sessions, recorder)
}

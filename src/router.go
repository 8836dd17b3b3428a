package main

import (
	"github.com/gin-gonic/gin"

	"personnel-api/src/audit"
	"personnel-api/src/auth"
	"personnel-api/src/middleware"
	"personnel-api/src/model"
	"personnel-api/src/personnel"
	"personnel-api/src/session"
)

// buildRouter registers the full HTTP surface. The guard middleware wraps
// only the protected routes; login/logout and the root redirect stay open.
func buildRouter(templatesGlob string, sessions session.Store, authHandler *auth.Handler, personnelHandler *personnel.Handler, auditHandler *audit.Handler) *gin.Engine {
	router := gin.Default()
	router.LoadHTMLGlob(templatesGlob)

	router.GET("/", authHandler.Home)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	directorOnly := middleware.RequireSession(sessions, model.RoleDirector)
	router.GET("/registrar-empleado", directorOnly, personnelHandler.ShowRegistrar)
	router.POST("/registrar-empleado", directorOnly, personnelHandler.Registrar)
	router.GET("/auditoria", directorOnly, auditHandler.Consultar)

	router.GET("/consultar-personal", middleware.RequireSession(sessions), personnelHandler.Consultar)

	return router
}

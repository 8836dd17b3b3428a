package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"personnel-api/src/audit"
	"personnel-api/src/logger"
	"personnel-api/src/session"
)

type Handler struct {
	service  *Service
	sessions session.Store
	recorder *audit.Recorder
}

func NewHandler(service *Service, sessions session.Store, recorder *audit.Recorder) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		recorder: recorder,
	}
}

// Home routes the bare domain: active session goes to the listing, anyone
// else to the login form.
func (h *Handler) Home(c *gin.Context) {
	if _, ok := session.FromRequest(c, h.sessions); ok {
		c.Redirect(http.StatusFound, "/consultar-personal")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login authenticates the submitted form and establishes the session.
// Every failure re-renders the form with a user message; persistence
// failures never escape as raw errors.
func (h *Handler) Login(c *gin.Context) {
	correo := strings.TrimSpace(c.PostForm("correo"))
	contrasena := c.PostForm("contrasena")

	login, err := h.service.Authenticate(correo, contrasena)
	if err != nil {
		msg := loginErrorMessage(err)
		if !errors.Is(err, ErrInvalidCredentials) && !errors.Is(err, ErrNoRoleAssigned) && !errors.Is(err, ErrDataAccess) {
			logger.Default().Error(err, "Login failed on datastore access")
		}
		h.recorder.Record("", audit.ActionLoginFailed, correo, msg)
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": msg})
		return
	}

	token := session.Issue(h.sessions, login.CURP, login.Role)
	session.SetCookie(c, token)
	h.recorder.Record(login.CURP, audit.ActionLogin, correo, "rol "+login.Role.String())

	c.Redirect(http.StatusFound, RedirectPath(login.Role))
}

func (h *Handler) Logout(c *gin.Context) {
	if s, ok := session.FromRequest(c, h.sessions); ok {
		h.recorder.Record(s.CURP, audit.ActionLogout, "", "")
	}

	if token, err := c.Cookie(session.CookieName); err == nil {
		h.sessions.Clear(token)
	}
	session.ClearCookie(c)

	c.Redirect(http.StatusFound, "/login")
}

func loginErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrNoRoleAssigned),
		errors.Is(err, ErrDataAccess):
		return err.Error()
	}
	return "Error al iniciar sesión, intente de nuevo"
}

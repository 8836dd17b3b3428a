package personnel

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"personnel-api/src/audit"
	"personnel-api/src/logger"
	"personnel-api/src/middleware"
)

type Handler struct {
	service  *Service
	recorder *audit.Recorder
}

func NewHandler(service *Service, recorder *audit.Recorder) *Handler {
	return &Handler{service: service, recorder: recorder}
}

func (h *Handler) ShowRegistrar(c *gin.Context) {
	c.HTML(http.StatusOK, "registro.html", gin.H{})
}

// Registrar handles the registration form submit. Validation failures name
// the offending field; persistence failures collapse into one generic
// message and the form is re-rendered either way.
func (h *Handler) Registrar(c *gin.Context) {
	form := RegistrationForm{
		CURP:            c.PostForm("curp"),
		Nombre:          c.PostForm("nombre"),
		ApellidoPaterno: c.PostForm("apellidoP"),
		ApellidoMaterno: c.PostForm("apellidoM"),
		RFC:             c.PostForm("rfc"),
		Sexo:            c.DefaultPostForm("sexo", "Otro"),
		FechaNacimiento: c.PostForm("fecha_nacimiento"),
		Telefono:        c.PostForm("telefono"),
		Correo:          c.PostForm("correo"),
		Calle:           c.PostForm("calle"),
		Cedula:          c.PostForm("cedula"),
		Rol:             c.DefaultPostForm("rol", "abogado"),
		Especialidad:    c.PostForm("especialidad"),
		Contrasena:      c.PostForm("contrasena"),
	}

	if err := h.service.Register(form); err != nil {
		var verr *ValidationError
		msg := "Error al registrar, intente de nuevo"
		if errors.As(err, &verr) {
			msg = verr.Message
		} else {
			logger.Default().Error(err, "Employee registration failed")
		}
		c.HTML(http.StatusOK, "registro.html", gin.H{"Error": msg})
		return
	}

	actor := ""
	if s, ok := middleware.CurrentSession(c); ok {
		actor = s.CURP
	}
	curp := strings.ToUpper(strings.TrimSpace(form.CURP))
	h.recorder.Record(actor, audit.ActionRegistration, curp, "rol "+strings.ToLower(form.Rol))

	c.HTML(http.StatusOK, "registro.html", gin.H{"Success": "¡Empleado registrado exitosamente!"})
}

// Consultar renders the full personnel listing for any authenticated user.
func (h *Handler) Consultar(c *gin.Context) {
	empleados, err := h.service.ListPersonas()
	if err != nil {
		logger.Default().Error(err, "Personnel listing failed")
		c.HTML(http.StatusOK, "consultar.html", gin.H{"Error": "Error al consultar el personal"})
		return
	}
	c.HTML(http.StatusOK, "consultar.html", gin.H{"Empleados": empleados})
}

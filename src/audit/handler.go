package audit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"personnel-api/src/logger"
)

const (
	defaultListingLimit = 50
	maxListingLimit     = 200
)

type Handler struct {
	repository Repository
}

func NewHandler(repository Repository) *Handler {
	return &Handler{repository: repository}
}

// Consultar renders the recent audit entries, newest first. The `accion`
// query narrows the listing to one action kind; `limit` and `offset` page
// through it.
func (h *Handler) Consultar(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListingLimit)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > maxListingLimit {
		limit = defaultListingLimit
	}
	if offset < 0 {
		offset = 0
	}

	accion := c.Query("accion")

	var entries []Entry
	var err error
	if accion != "" {
		entries, err = h.repository.RecentByAction(accion, limit, offset)
	} else {
		entries, err = h.repository.Recent(limit, offset)
	}
	if err != nil {
		logger.Default().Error(err, "Audit listing failed")
		c.HTML(http.StatusOK, "auditoria.html", gin.H{"Error": "Error al consultar la auditoría"})
		return
	}

	c.HTML(http.StatusOK, "auditoria.html", gin.H{"Entradas": entries, "Accion": accion})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	"github.com/StudioBellaVista/salon-admin/internal/httpresp"
)

type AuditLogHandler struct {
	logger *audit.Logger
}

func NewAuditLogHandler(logger *audit.Logger) *AuditLogHandler {
	return &AuditLogHandler{logger: logger}
}

// List devolve a trilha recente, mais novas primeiro, com filtros
// opcionais por action e entity.
func (h *AuditLogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries := h.logger.Recent(limit, c.Query("action"), c.Query("entity"))
	httpresp.List(c, entries)
}

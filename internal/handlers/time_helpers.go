package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/timezone"
)

// currentLocation resolve o fuso oficial do salão para filtros de data
// e cálculo de "hoje".
func currentLocation() *time.Location {
	return timezone.Location(timezone.DefaultTimezone)
}

func parseQueryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		httperr.BadRequest(c, "missing_"+name, "Parâmetro obrigatório: "+name+".")
		return 0, false
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Parâmetro inválido: "+name+".")
		return 0, false
	}

	return uint(id), true
}

func asBusiness(err error, target *httperr.BusinessError) bool {
	return errors.As(err, target)
}

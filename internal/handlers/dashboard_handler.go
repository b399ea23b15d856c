package handlers

import (
	"github.com/gin-gonic/gin"

	ucAppointment "github.com/StudioBellaVista/salon-admin/internal/usecase/appointment"
)

type DashboardHandler struct {
	stats *ucAppointment.DashboardStats
}

func NewDashboardHandler(stats *ucAppointment.DashboardStats) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats responde os cartões do painel. Leitura degradada nunca vira
// erro HTTP: os números saem parciais com o aviso no corpo.
func (h *DashboardHandler) Stats(c *gin.Context) {
	out := h.stats.Execute(c.Request.Context(), ucAppointment.DashboardStatsInput{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Status:    c.Query("status"),
	})

	c.JSON(200, out)
}

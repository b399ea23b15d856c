package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/httpresp"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

type ServiceHandler struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewServiceHandler(gw domain.Gateway, auditDispatcher *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{gw: gw, audit: auditDispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.gw.ListServices(c.Request.Context())
	if err != nil {
		services = []models.Service{}
	}

	httpresp.List(c, services)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func validateService(s *models.Service) (string, string) {
	if s.Name == "" {
		return "missing_name", "Nome é obrigatório."
	}
	if s.DurationMinutes <= 0 {
		return "invalid_duration", "Duração deve ser positiva."
	}
	if s.Price < 0 {
		return "invalid_price", "Preço não pode ser negativo."
	}

	switch s.ServiceType {
	case models.ServiceTypeCabelo, models.ServiceTypeUnhas,
		models.ServiceTypeBarba, models.ServiceTypeMaquiagem,
		models.ServiceTypePele:
		return "", ""
	}
	return "invalid_service_type", "Tipo de serviço inválido."
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, msg := validateService(&req); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	created, err := h.gw.CreateService(c.Request.Context(), &req)
	if err != nil {
		writeGatewayError(c, err, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &created.ID,
	})

	c.JSON(201, created)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, msg := validateService(&req); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	updated, err := h.gw.UpdateService(c.Request.Context(), id, &req)
	if err != nil {
		writeGatewayError(c, err, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &updated.ID,
	})

	c.JSON(200, updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.gw.DeleteService(c.Request.Context(), id); err != nil {
		writeGatewayError(c, err, "failed_to_delete_service", "Erro ao excluir serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: &id,
	})

	c.Status(204)
}

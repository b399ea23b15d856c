package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/httpresp"
	"github.com/StudioBellaVista/salon-admin/internal/models"
	"github.com/StudioBellaVista/salon-admin/internal/validators"
)

type TeamHandler struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewTeamHandler(gw domain.Gateway, auditDispatcher *audit.Dispatcher) *TeamHandler {
	return &TeamHandler{gw: gw, audit: auditDispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.gw.ListTeam(c.Request.Context())
	if err != nil {
		members = []models.TeamMember{}
	}

	httpresp.List(c, members)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *TeamHandler) Create(c *gin.Context) {
	var req models.TeamMember
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	req.Phone = validators.PhoneDigits(req.Phone)

	created, err := h.gw.CreateTeamMember(c.Request.Context(), &req)
	if err != nil {
		writeGatewayError(c, err, "failed_to_create_team_member", "Erro ao criar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "team_member_created",
		Entity:   "team_member",
		EntityID: &created.ID,
	})

	c.JSON(201, created)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.TeamMember
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	req.Phone = validators.PhoneDigits(req.Phone)

	updated, err := h.gw.UpdateTeamMember(c.Request.Context(), id, &req)
	if err != nil {
		writeGatewayError(c, err, "failed_to_update_team_member", "Erro ao atualizar profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "team_member_updated",
		Entity:   "team_member",
		EntityID: &updated.ID,
	})

	c.JSON(200, updated)
}

func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.gw.DeleteTeamMember(c.Request.Context(), id); err != nil {
		writeGatewayError(c, err, "failed_to_delete_team_member", "Erro ao excluir profissional.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "team_member_deleted",
		Entity:   "team_member",
		EntityID: &id,
	})

	c.Status(204)
}

// ======================================================
// SERVICE OPTIONS (resolver de especialidades)
// ======================================================

// ServiceOptions devolve as opções de serviço do profissional, já
// rotuladas com preço, para o select do formulário de agendamento.
func (h *TeamHandler) ServiceOptions(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	members, err := h.gw.ListTeam(ctx)
	if err != nil {
		members = []models.TeamMember{}
	}

	services, err := h.gw.ListServices(ctx)
	if err != nil {
		services = []models.Service{}
	}

	options := domain.ServiceOptions(id, members, services)
	httpresp.List(c, options)
}

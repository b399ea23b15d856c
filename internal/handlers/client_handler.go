package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/httpresp"
	"github.com/StudioBellaVista/salon-admin/internal/models"
	"github.com/StudioBellaVista/salon-admin/internal/validators"
)

type ClientHandler struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewClientHandler(gw domain.Gateway, auditDispatcher *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{gw: gw, audit: auditDispatcher}
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.gw.ListClients(c.Request.Context())
	if err != nil {
		// Leitura degrada para coleção vazia, nunca erro fatal.
		clients = []models.Client{}
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	out := []models.Client{}

	for _, client := range clients {
		if query != "" &&
			!strings.Contains(strings.ToLower(client.Name), query) &&
			!strings.Contains(client.Phone, query) &&
			!strings.Contains(strings.ToLower(client.Email), query) {
			continue
		}
		client.PhoneDisplay = validators.FormatPhone(client.Phone)
		out = append(out, client)
	}

	httpresp.List(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req models.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		httperr.BadRequest(c, "missing_name", "Nome é obrigatório.")
		return
	}

	req.Phone = validators.PhoneDigits(req.Phone)
	if req.Phone != "" && !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "Domínio de e-mail inválido.")
		return
	}

	created, err := h.gw.CreateClient(c.Request.Context(), &req)
	if err != nil {
		writeGatewayError(c, err, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &created.ID,
	})

	created.PhoneDisplay = validators.FormatPhone(created.Phone)
	c.JSON(201, created)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	req.Phone = validators.PhoneDigits(req.Phone)

	if req.Email != "" && !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "Domínio de e-mail inválido.")
		return
	}

	updated, err := h.gw.UpdateClient(c.Request.Context(), id, &req)
	if err != nil {
		writeGatewayError(c, err, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &updated.ID,
	})

	updated.PhoneDisplay = validators.FormatPhone(updated.Phone)
	c.JSON(200, updated)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.gw.DeleteClient(c.Request.Context(), id); err != nil {
		writeGatewayError(c, err, "failed_to_delete_client", "Erro ao excluir cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &id,
	})

	c.Status(204)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return 0, false
	}
	return uint(id), true
}

package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	"github.com/StudioBellaVista/salon-admin/internal/backend"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/httpresp"
	"github.com/StudioBellaVista/salon-admin/internal/models"
	ucAppointment "github.com/StudioBellaVista/salon-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	gw     domain.Gateway
	check  *ucAppointment.CheckConflict
	submit *ucAppointment.SubmitDraft
	local  *ucAppointment.LocalStore
	drafts *ucAppointment.DraftSessions
	audit  *audit.Dispatcher
}

func NewAppointmentHandler(
	gw domain.Gateway,
	check *ucAppointment.CheckConflict,
	submit *ucAppointment.SubmitDraft,
	local *ucAppointment.LocalStore,
	drafts *ucAppointment.DraftSessions,
	auditDispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		gw:     gw,
		check:  check,
		submit: submit,
		local:  local,
		drafts: drafts,
		audit:  auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	Client          uint          `json:"client" binding:"required"`
	TeamMember      uint          `json:"team_member" binding:"required"`
	Services        models.IDList `json:"services" binding:"required"`
	AppointmentDate string        `json:"appointment_date" binding:"required"`
	AppointmentTime string        `json:"appointment_time" binding:"required"`
	Status          string        `json:"status"`
	Notes           string        `json:"notes"`
}

type CheckConflictRequest struct {
	Date                 string `json:"date" binding:"required"`
	TeamMember           uint   `json:"team_member" binding:"required"`
	Time                 string `json:"time" binding:"required"`
	ExcludeAppointmentID *uint  `json:"exclude_appointment_id"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST (agendamentos reais + salvos localmente)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	appointments, err := h.gw.ListAppointments(ctx)
	if err != nil {
		appointments = []models.Appointment{}
	}

	appointments = append(appointments, h.local.List()...)
	h.enrichNames(c, appointments)

	filter := domain.Filter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Status:    c.Query("status"),
	}

	loc := currentLocation()
	httpresp.List(c, filter.Apply(appointments, loc))
}

// ======================================================
// CREATE / UPDATE (rascunho de uma tacada só)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	h.save(c, nil)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.save(c, &id)
}

func (h *AppointmentHandler) save(c *gin.Context, editingID *uint) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Status != "" && !domain.IsValidStatus(domain.Status(req.Status)) {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	ctx := c.Request.Context()

	// O formulário direto passa pelo mesmo ciclo do rascunho: a
	// elegibilidade dos serviços e os totais nunca vêm do cliente.
	var d *domain.Draft
	if editingID != nil {
		// Parte do registro atual para que um status omitido no PUT
		// não volte para o inicial.
		base := &models.Appointment{ID: *editingID}
		if current, err := h.gw.GetAppointment(ctx, *editingID); err == nil {
			base = current
		}
		d = domain.EditDraft("", base)
	} else {
		d = domain.NewDraft("")
	}

	members, membersErr := h.gw.ListTeam(ctx)

	d.ClientID = req.Client
	d.SetDate(req.AppointmentDate)
	d.SetTime(req.AppointmentTime)
	if req.Status != "" {
		d.Status = req.Status
	}
	d.Notes = req.Notes

	if membersErr != nil {
		// Sem a lista da equipe não dá para validar elegibilidade; falha
		// de leitura não bloqueia o save.
		d.TeamMemberID = req.TeamMember
		d.ServiceIDs = append(models.IDList{}, req.Services...)
	} else {
		d.SetTeamMember(req.TeamMember, members)
		d.SetServices(req.Services, members)

		if len(d.ServiceIDs) < len(req.Services) {
			httperr.BadRequest(
				c,
				"service_not_in_specialties",
				"Um ou mais serviços não pertencem às especialidades do profissional.",
			)
			return
		}
	}

	outcome, err := h.submit.Execute(ctx, *d)
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	status := 201
	if editingID != nil {
		status = 200
	}
	c.JSON(status, outcome)
}

func (h *AppointmentHandler) writeSubmitError(c *gin.Context, err error) {
	if backend.IsValidation(err) {
		httperr.BadRequest(c, "validation_error", backend.ValidationMessage(err))
		return
	}
	if httperr.IsBusiness(err, "time_conflict") {
		httperr.Conflict(c, "time_conflict", ucAppointment.ConflictMessage)
		return
	}

	var be httperr.BusinessError
	if ok := asBusiness(err, &be); ok {
		httperr.BadRequest(c, be.Code, "Rascunho incompleto.")
		return
	}

	httperr.Internal(c, "failed_to_save_appointment", "Erro ao salvar agendamento.")
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	localID := c.Query("local_only_id")
	if localID != "" {
		// Registro que nunca chegou ao backend: só sai da memória.
		h.local.Remove(localID)
		c.Status(204)
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.gw.DeleteAppointment(c.Request.Context(), id); err != nil {
		writeGatewayError(c, err, "failed_to_delete_appointment", "Erro ao excluir agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	c.Status(204)
}

// ======================================================
// STATUS (scheduled → confirmed → in_progress → completed)
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	to := domain.Status(req.Status)
	if !domain.IsValidStatus(to) {
		httperr.BadRequest(c, "invalid_status", "Status inválido.")
		return
	}

	ctx := c.Request.Context()

	ap, err := h.gw.GetAppointment(ctx, id)
	if err != nil {
		writeGatewayError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if err := domain.CanTransition(domain.Status(ap.Status), to); err != nil {
		httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
		return
	}

	ap.Status = string(to)

	updated, err := h.gw.UpdateAppointment(ctx, id, ap)
	if err != nil {
		writeGatewayError(c, err, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{"to": string(to)},
	})

	c.JSON(200, updated)
}

// ======================================================
// AVAILABLE SLOTS / CHECK CONFLICT
// ======================================================

func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	memberID, ok := parseQueryID(c, "team_member")
	if !ok {
		return
	}

	slots, err := h.gw.AvailableSlots(c.Request.Context(), date, memberID)
	if err != nil {
		writeGatewayError(c, err, "failed_to_load_slots", "Erro ao buscar horários.")
		return
	}

	c.JSON(200, gin.H{"available_slots": slots})
}

func (h *AppointmentHandler) CheckConflict(c *gin.Context) {
	var req CheckConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res := h.check.Execute(c.Request.Context(), ucAppointment.CheckConflictInput{
		Date:                 req.Date,
		TeamMemberID:         req.TeamMember,
		Time:                 req.Time,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
	})

	c.JSON(200, res)
}

// ======================================================
// HELPERS
// ======================================================

// enrichNames completa client_name/team_member_name/services_list nos
// itens em que o backend mandou só os ids.
func (h *AppointmentHandler) enrichNames(c *gin.Context, appointments []models.Appointment) {
	needsNames := false
	for i := range appointments {
		if appointments[i].ClientName == "" ||
			appointments[i].TeamMemberName == "" ||
			appointments[i].ServicesList == "" {
			needsNames = true
			break
		}
	}
	if !needsNames {
		return
	}

	ctx := c.Request.Context()

	clients, _ := h.gw.ListClients(ctx)
	members, _ := h.gw.ListTeam(ctx)
	services, _ := h.gw.ListServices(ctx)

	clientNames := make(map[uint]string, len(clients))
	for _, cl := range clients {
		clientNames[cl.ID] = cl.Name
	}
	memberNames := make(map[uint]string, len(members))
	for _, m := range members {
		memberNames[m.ID] = m.Name
	}
	serviceNames := make(map[uint]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}

	for i := range appointments {
		ap := &appointments[i]

		if ap.ClientName == "" {
			if ap.Client.Name != "" {
				ap.ClientName = ap.Client.Name
			} else {
				ap.ClientName = clientNames[ap.Client.ID]
			}
		}

		if ap.TeamMemberName == "" {
			if ap.TeamMember.Name != "" {
				ap.TeamMemberName = ap.TeamMember.Name
			} else {
				ap.TeamMemberName = memberNames[ap.TeamMember.ID]
			}
		}

		if ap.ServicesList == "" {
			names := []string{}
			for _, id := range ap.Services {
				if name, ok := serviceNames[id]; ok {
					names = append(names, name)
				}
			}
			ap.ServicesList = strings.Join(names, ", ")
		}
	}
}

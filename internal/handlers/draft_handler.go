package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/StudioBellaVista/salon-admin/internal/backend"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/models"
	ucAppointment "github.com/StudioBellaVista/salon-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type DraftHandler struct {
	gw     domain.Gateway
	drafts *ucAppointment.DraftSessions
	check  *ucAppointment.CheckConflict
	submit *ucAppointment.SubmitDraft
}

func NewDraftHandler(
	gw domain.Gateway,
	drafts *ucAppointment.DraftSessions,
	check *ucAppointment.CheckConflict,
	submit *ucAppointment.SubmitDraft,
) *DraftHandler {
	return &DraftHandler{
		gw:     gw,
		drafts: drafts,
		check:  check,
		submit: submit,
	}
}

// ======================================================
// REQUESTS / VIEWS
// ======================================================

type StartDraftRequest struct {
	// Presente em edição; ausente em criação.
	AppointmentID *uint `json:"appointment_id"`
}

type PatchDraftRequest struct {
	ClientID     *uint          `json:"client_id"`
	TeamMemberID *uint          `json:"team_member_id"`
	Services     *models.IDList `json:"services"`
	Date         *string        `json:"appointment_date"`
	Time         *string        `json:"appointment_time"`
	Status       *string        `json:"status"`
	Notes        *string        `json:"notes"`
}

type DraftView struct {
	ID      string `json:"id"`
	State   string `json:"state"`
	Editing *uint  `json:"editing_appointment_id,omitempty"`

	ClientID     uint          `json:"client_id"`
	TeamMemberID uint          `json:"team_member_id"`
	Services     models.IDList `json:"services"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`

	ConflictMessage string `json:"conflict_message,omitempty"`
	Advisory        string `json:"advisory,omitempty"`

	ServiceOptions []domain.ServiceOption `json:"service_options"`
}

// view monta a resposta de um rascunho. As listas vêm do gateway antes
// de travar a sessão; o lock cobre só o instantâneo do rascunho, nunca
// uma ida à rede.
func (h *DraftHandler) view(c *gin.Context, id string) (DraftView, error) {
	ctx := c.Request.Context()

	members, err := h.gw.ListTeam(ctx)
	if err != nil {
		members = []models.TeamMember{}
	}
	services, err := h.gw.ListServices(ctx)
	if err != nil {
		services = []models.Service{}
	}

	var snap domain.Draft
	if err := h.drafts.Mutate(id, func(d *domain.Draft) error {
		snap = d.Snapshot()
		return nil
	}); err != nil {
		return DraftView{}, err
	}

	return renderDraft(snap, members, services), nil
}

func renderDraft(d domain.Draft, members []models.TeamMember, services []models.Service) DraftView {
	return DraftView{
		ID:              d.ID,
		State:           string(d.State),
		Editing:         d.Editing,
		ClientID:        d.ClientID,
		TeamMemberID:    d.TeamMemberID,
		Services:        d.ServiceIDs,
		AppointmentDate: d.Date,
		AppointmentTime: d.Time,
		Status:          d.Status,
		Notes:           d.Notes,
		ConflictMessage: d.ConflictMessage,
		Advisory:        d.Advisory,
		ServiceOptions:  domain.ServiceOptions(d.TeamMemberID, members, services),
	}
}

// ======================================================
// START (Idle → Drafting)
// ======================================================

func (h *DraftHandler) Start(c *gin.Context) {
	var req StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var d *domain.Draft

	if req.AppointmentID != nil {
		// Edição: detalhe completo do backend, achatado no rascunho.
		ap, err := h.gw.GetAppointment(c.Request.Context(), *req.AppointmentID)
		if err != nil {
			writeGatewayError(c, err, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		d = h.drafts.StartEdit(ap)
	} else {
		d = h.drafts.StartNew()
	}

	out, err := h.view(c, d.ID)
	if err != nil {
		httperr.NotFound(c, "draft_not_found", "Rascunho não encontrado.")
		return
	}
	c.JSON(201, out)
}

// ======================================================
// PATCH (mudanças de campo + checagem de conflito)
// ======================================================

func (h *DraftHandler) Patch(c *gin.Context) {
	id := c.Param("id")

	var req PatchDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	members, membersErr := h.gw.ListTeam(ctx)

	// Aplica as mudanças com o rascunho travado; se o horário mudou com
	// profissional selecionado, arma uma checagem de conflito e captura
	// o token de geração.
	var (
		checkInput *ucAppointment.CheckConflictInput
		generation uint64
	)

	err := h.drafts.Mutate(id, func(d *domain.Draft) error {
		if req.ClientID != nil {
			d.ClientID = *req.ClientID
		}
		if req.TeamMemberID != nil {
			if membersErr != nil {
				// Equipe ilegível: aplica sem podar a seleção.
				d.TeamMemberID = *req.TeamMemberID
			} else {
				d.SetTeamMember(*req.TeamMemberID, members)
			}
		}
		if req.Services != nil {
			if membersErr != nil {
				d.ServiceIDs = append(models.IDList{}, *req.Services...)
			} else {
				d.SetServices(*req.Services, members)
			}
		}
		if req.Date != nil {
			d.SetDate(*req.Date)
		}
		if req.Status != nil {
			d.Status = *req.Status
		}
		if req.Notes != nil {
			d.Notes = *req.Notes
		}

		if req.Time != nil {
			d.SetTime(*req.Time)

			if d.TeamMemberID != 0 && d.Date != "" {
				generation = d.BeginConflictCheck()
				checkInput = &ucAppointment.CheckConflictInput{
					Date:                 d.Date,
					TeamMemberID:         d.TeamMemberID,
					Time:                 d.Time,
					ExcludeAppointmentID: d.Editing,
				}
			}
		}

		return nil
	})
	if err != nil {
		httperr.NotFound(c, "draft_not_found", "Rascunho não encontrado.")
		return
	}

	// A chamada de rede roda fora do lock; o token garante que uma
	// resposta superada nunca sobrescreve a mais nova.
	if checkInput != nil {
		res := h.check.Execute(ctx, *checkInput)
		_ = h.drafts.Mutate(id, func(d *domain.Draft) error {
			d.ApplyConflictResult(generation, res.HasConflict, res.Message, res.Advisory)
			return nil
		})
	}

	out, err := h.view(c, id)
	if err != nil {
		httperr.NotFound(c, "draft_not_found", "Rascunho não encontrado.")
		return
	}

	c.JSON(200, out)
}

// ======================================================
// SUBMIT (ConflictChecking → Submitting → Idle)
// ======================================================

func (h *DraftHandler) Submit(c *gin.Context) {
	id := c.Param("id")

	// Instantâneo tirado com o rascunho travado; a revalidação e a
	// persistência rodam fora do lock sobre a cópia, e um bloqueio de
	// conflito volta para a sessão viva pelo token de geração.
	var (
		snapshot   domain.Draft
		generation uint64
	)
	if err := h.drafts.Mutate(id, func(d *domain.Draft) error {
		if err := d.CanSubmit(); err != nil {
			return err
		}
		generation = d.BeginConflictCheck()
		snapshot = d.Snapshot()
		return nil
	}); err != nil {
		var be httperr.BusinessError
		if asBusiness(err, &be) && be.Code != "draft_not_found" {
			httperr.BadRequest(c, be.Code, "Rascunho incompleto.")
			return
		}
		httperr.NotFound(c, "draft_not_found", "Rascunho não encontrado.")
		return
	}

	outcome, err := h.submit.Execute(c.Request.Context(), snapshot)
	if err != nil {
		// Rascunho permanece aberto para correção.
		var ve *backend.ValidationError
		if errors.As(err, &ve) && ve.Status == 409 {
			// Uma edição feita durante a submissão avança a geração e
			// faz este resultado ser descartado.
			_ = h.drafts.Mutate(id, func(d *domain.Draft) error {
				d.ApplyConflictResult(generation, true, ve.Message, "")
				return nil
			})
			httperr.Conflict(c, "time_conflict", ve.Message)
			return
		}

		_ = h.drafts.Mutate(id, func(d *domain.Draft) error {
			d.ApplyConflictResult(generation, false, "", "")
			return nil
		})

		if errors.As(err, &ve) {
			httperr.BadRequest(c, "validation_error", ve.Message)
			return
		}

		var be httperr.BusinessError
		if asBusiness(err, &be) {
			httperr.BadRequest(c, be.Code, "Rascunho incompleto.")
			return
		}

		httperr.Internal(c, "failed_to_submit_draft", "Erro ao salvar agendamento.")
		return
	}

	// Submissão concluída encerra a sessão.
	h.drafts.Discard(id)
	c.JSON(200, outcome)
}

// ======================================================
// CANCEL (Drafting → Idle)
// ======================================================

func (h *DraftHandler) Cancel(c *gin.Context) {
	h.drafts.Discard(c.Param("id"))
	c.Status(204)
}

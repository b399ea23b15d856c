package appointment

import (
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// ======================================================
// DRAFT (ciclo de vida de criação/edição)
// ======================================================

type DraftState string

const (
	StateDrafting         DraftState = "drafting"
	StateConflictChecking DraftState = "conflict_checking"
	StateConflictBlocked  DraftState = "conflict_blocked"
	StateSubmitting       DraftState = "submitting"
)

// Draft é o estado de um formulário de agendamento aberto. Vive só
// durante a sessão de criação/edição; cancelar descarta tudo.
type Draft struct {
	ID string

	// Id do agendamento sendo editado; nil em criação.
	Editing *uint

	State DraftState

	ClientID     uint
	TeamMemberID uint
	ServiceIDs   models.IDList

	Date   string
	Time   string
	Status string
	Notes  string

	ConflictMessage string
	Advisory        string

	// Token monotônico por checagem de conflito: resposta atrasada de
	// uma checagem antiga nunca sobrescreve a mais recente.
	generation uint64
}

// NewDraft abre um rascunho de criação, sem profissional selecionado.
func NewDraft(id string) *Draft {
	return &Draft{
		ID:     id,
		State:  StateDrafting,
		Status: string(InitialStatus()),
	}
}

// EditDraft abre um rascunho a partir do detalhe vindo do backend,
// achatando as referências aninhadas em ids simples.
func EditDraft(id string, ap *models.Appointment) *Draft {
	apID := ap.ID
	return &Draft{
		ID:           id,
		Editing:      &apID,
		State:        StateDrafting,
		ClientID:     ap.Client.ID,
		TeamMemberID: ap.TeamMember.ID,
		ServiceIDs:   append(models.IDList{}, ap.Services...),
		Date:         ap.AppointmentDate,
		Time:         ap.AppointmentTime,
		Status:       ap.Status,
		Notes:        ap.Notes,
	}
}

// ======================================================
// FIELD CHANGES
// ======================================================

// SetTeamMember troca o profissional e poda os serviços selecionados
// que ficaram fora das especialidades dele.
func (d *Draft) SetTeamMember(id uint, members []models.TeamMember) {
	d.TeamMemberID = id
	d.ServiceIDs = EligibleOnly(d.ServiceIDs, id, members)
	d.clearConflict()
}

func (d *Draft) SetServices(ids models.IDList, members []models.TeamMember) {
	d.ServiceIDs = EligibleOnly(ids, d.TeamMemberID, members)
}

func (d *Draft) SetDate(date string) {
	d.Date = date
	d.clearConflict()
}

func (d *Draft) SetTime(t string) {
	d.Time = t
	d.clearConflict()
}

func (d *Draft) clearConflict() {
	d.ConflictMessage = ""
	d.Advisory = ""
	if d.State == StateConflictBlocked {
		d.State = StateDrafting
	}
}

// ======================================================
// CONFLICT CHECK
// ======================================================

// BeginConflictCheck avança a geração e devolve o token que a resposta
// precisa apresentar para ser aplicada.
func (d *Draft) BeginConflictCheck() uint64 {
	d.generation++
	d.State = StateConflictChecking
	return d.generation
}

// ApplyConflictResult aplica o resultado só se o token ainda for o
// corrente; resultado de checagem superada é descartado.
func (d *Draft) ApplyConflictResult(gen uint64, hasConflict bool, message, advisory string) bool {
	if gen != d.generation {
		return false
	}

	d.Advisory = advisory

	if hasConflict {
		d.State = StateConflictBlocked
		d.ConflictMessage = message
		return true
	}

	d.State = StateDrafting
	d.ConflictMessage = ""
	return true
}

func (d *Draft) Generation() uint64 {
	return d.generation
}

// Snapshot devolve uma cópia independente do rascunho, com a lista de
// serviços duplicada. É o que os handlers carregam para fora do lock
// da sessão.
func (d *Draft) Snapshot() Draft {
	cp := *d
	cp.ServiceIDs = append(models.IDList{}, d.ServiceIDs...)
	return cp
}

// ======================================================
// SUBMIT
// ======================================================

// CanSubmit valida o mínimo antes da submissão final.
func (d *Draft) CanSubmit() error {
	if d.State == StateConflictBlocked {
		return httperr.ErrBusiness("time_conflict")
	}
	if d.ClientID == 0 || d.TeamMemberID == 0 {
		return httperr.ErrBusiness("missing_required_fields")
	}
	if len(d.ServiceIDs) == 0 {
		return httperr.ErrBusiness("no_services_selected")
	}
	if d.Date == "" || d.Time == "" {
		return httperr.ErrBusiness("missing_date_or_time")
	}
	return nil
}

// ToAppointment materializa o payload de create/update, com os totais
// recalculados a partir do catálogo atual.
func (d *Draft) ToAppointment(catalog []models.Service) *models.Appointment {
	price, duration := Totals(d.ServiceIDs, catalog)

	status := d.Status
	if status == "" {
		status = string(InitialStatus())
	}

	ap := &models.Appointment{
		Client:          models.Ref{ID: d.ClientID},
		TeamMember:      models.Ref{ID: d.TeamMemberID},
		Services:        append(models.IDList{}, d.ServiceIDs...),
		AppointmentDate: d.Date,
		AppointmentTime: d.Time,
		Status:          status,
		Notes:           d.Notes,
		TotalPrice:      models.Money(price),
		TotalDuration:   duration,
	}

	if d.Editing != nil {
		ap.ID = *d.Editing
	}

	return ap
}

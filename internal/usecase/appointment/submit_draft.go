package appointment

import (
	"context"
	"strings"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	"github.com/StudioBellaVista/salon-admin/internal/backend"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// Motivo exibido quando o registro ficou só local.
const LocalOnlyCause = "salvo localmente, backend indisponível"

// ======================================================
// OUTCOME
// ======================================================

type OutcomeKind string

const (
	OutcomePersisted OutcomeKind = "persisted"
	OutcomeLocalOnly OutcomeKind = "local_only"
)

// SaveOutcome distingue explicitamente o registro persistido no backend
// do fallback otimista local; a distinção nunca se perde no caminho até
// o painel.
type SaveOutcome struct {
	Kind        OutcomeKind        `json:"kind"`
	Appointment models.Appointment `json:"appointment"`
	Reason      string             `json:"reason,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type SubmitDraft struct {
	gw    domain.Gateway
	check *CheckConflict
	local *LocalStore
	audit *audit.Dispatcher
}

func NewSubmitDraft(
	gw domain.Gateway,
	check *CheckConflict,
	local *LocalStore,
	auditDispatcher *audit.Dispatcher,
) *SubmitDraft {
	return &SubmitDraft{
		gw:    gw,
		check: check,
		local: local,
		audit: auditDispatcher,
	}
}

// Execute fecha o ciclo do rascunho: revalida conflito, recalcula os
// totais a partir do catálogo atual e persiste. A checagem de conflito
// refeita aqui existe porque a checagem do campo de horário pode ter
// corrido contra edições de data/profissional no meio do caminho.
//
// Recebe o rascunho por valor: o chamador tira o instantâneo com o
// rascunho travado e devolve um eventual bloqueio para a sessão viva
// pelo token de geração.
func (uc *SubmitDraft) Execute(ctx context.Context, d domain.Draft) (*SaveOutcome, error) {

	// --------------------------------------------------
	// 1. Validação mínima do rascunho
	// --------------------------------------------------
	if err := d.CanSubmit(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Revalidação de conflito
	// --------------------------------------------------
	res := uc.check.Execute(ctx, CheckConflictInput{
		Date:                 d.Date,
		TeamMemberID:         d.TeamMemberID,
		Time:                 d.Time,
		ExcludeAppointmentID: d.Editing,
	})
	if res.HasConflict {
		return nil, backend.NewConflictError(res.Message)
	}

	// --------------------------------------------------
	// 3. Totais recalculados do catálogo corrente
	// --------------------------------------------------
	catalog, err := uc.gw.ListServices(ctx)
	if err != nil {
		catalog = nil
	}

	ap := d.ToAppointment(catalog)

	// --------------------------------------------------
	// 4. Persistência (create ou update)
	// --------------------------------------------------
	var saved *models.Appointment
	if d.Editing != nil {
		saved, err = uc.gw.UpdateAppointment(ctx, *d.Editing, ap)
	} else {
		saved, err = uc.gw.CreateAppointment(ctx, ap)
	}

	if err != nil {
		if backend.IsTransport(err) {
			// Fallback otimista: não travar o painel porque o backend
			// caiu. O registro fica marcado como local-only.
			record := uc.local.Add(*ap, LocalOnlyCause)

			uc.audit.Dispatch(audit.Event{
				Action: "appointment_saved_locally",
				Entity: "appointment",
				Metadata: map[string]any{
					"local_only_id": record.LocalOnlyID,
					"date":          record.AppointmentDate,
					"time":          record.AppointmentTime,
				},
			})

			return &SaveOutcome{
				Kind:        OutcomeLocalOnly,
				Appointment: record,
				Reason:      LocalOnlyCause,
			}, nil
		}

		// Erro de validação estruturado sobe verbatim; o rascunho
		// permanece aberto.
		return nil, err
	}

	uc.mergeDisplayNames(ctx, saved, catalog)

	action := "appointment_created"
	if d.Editing != nil {
		action = "appointment_updated"
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: &saved.ID,
	})

	return &SaveOutcome{
		Kind:        OutcomePersisted,
		Appointment: *saved,
	}, nil
}

// mergeDisplayNames completa a resposta do backend com os nomes que o
// painel já conhece (cliente, profissional, lista de serviços).
func (uc *SubmitDraft) mergeDisplayNames(
	ctx context.Context,
	ap *models.Appointment,
	catalog []models.Service,
) {

	if ap.ClientName == "" && ap.Client.Name != "" {
		ap.ClientName = ap.Client.Name
	}
	if ap.ClientName == "" {
		if clients, err := uc.gw.ListClients(ctx); err == nil {
			for _, c := range clients {
				if c.ID == ap.Client.ID {
					ap.ClientName = c.Name
					break
				}
			}
		}
	}

	if ap.TeamMemberName == "" && ap.TeamMember.Name != "" {
		ap.TeamMemberName = ap.TeamMember.Name
	}
	if ap.TeamMemberName == "" {
		if members, err := uc.gw.ListTeam(ctx); err == nil {
			for _, m := range members {
				if m.ID == ap.TeamMember.ID {
					ap.TeamMemberName = m.Name
					break
				}
			}
		}
	}

	if ap.ServicesList == "" && len(catalog) > 0 {
		names := []string{}
		for _, id := range ap.Services {
			for _, svc := range catalog {
				if svc.ID == id {
					names = append(names, svc.Name)
					break
				}
			}
		}
		ap.ServicesList = strings.Join(names, ", ")
	}
}

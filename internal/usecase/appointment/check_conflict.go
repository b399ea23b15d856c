package appointment

import (
	"context"

	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
)

// Mensagens exibidas no formulário.
const (
	ConflictMessage = "Este profissional já possui um agendamento neste horário. Por favor, escolha outro horário."
	AdvisoryMessage = "Não foi possível verificar conflitos de agendamento. Prossiga com cuidado."
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CheckConflictInput struct {
	Date         string
	TeamMemberID uint
	Time         string

	// Id do agendamento em edição: o profissional pode manter o
	// próprio horário.
	ExcludeAppointmentID *uint
}

type ConflictResult struct {
	HasConflict bool   `json:"has_conflict"`
	Message     string `json:"message,omitempty"`
	Advisory    string `json:"advisory,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// CheckConflict decide se um horário candidato colide com um agendamento
// existente do profissional. É best-effort por desenho: o backend é quem
// garante a ausência real de conflito, então qualquer falha aqui é
// fail-open (nunca bloqueia a submissão sozinha).
type CheckConflict struct {
	gw domain.Gateway
}

func NewCheckConflict(gw domain.Gateway) *CheckConflict {
	return &CheckConflict{gw: gw}
}

func (uc *CheckConflict) Execute(
	ctx context.Context,
	in CheckConflictInput,
) ConflictResult {

	// --------------------------------------------------
	// 1. Slots livres do profissional na data
	// --------------------------------------------------
	slots, err := uc.gw.AvailableSlots(ctx, in.Date, in.TeamMemberID)
	if err != nil {
		return ConflictResult{HasConflict: false, Advisory: AdvisoryMessage}
	}

	for _, slot := range slots {
		if slot == in.Time {
			return ConflictResult{}
		}
	}

	// --------------------------------------------------
	// 2. Horário fora dos slots: desambiguar. "Indisponível" pode ser
	//    o próprio agendamento em edição ocupando o slot.
	// --------------------------------------------------
	existing, err := uc.gw.ListAppointmentsFor(ctx, in.Date, in.TeamMemberID)
	if err != nil {
		return ConflictResult{HasConflict: false, Advisory: AdvisoryMessage}
	}

	for _, ap := range existing {
		if ap.AppointmentTime != in.Time {
			continue
		}
		if !domain.Occupies(domain.Status(ap.Status)) {
			continue
		}
		if in.ExcludeAppointmentID != nil && ap.ID == *in.ExcludeAppointmentID {
			continue
		}
		return ConflictResult{
			HasConflict: true,
			Message:     ConflictMessage,
		}
	}

	// Nenhum agendamento real no horário: falso positivo por
	// auto-ocupação.
	return ConflictResult{}
}

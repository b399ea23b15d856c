package appointment

import "github.com/StudioBellaVista/salon-admin/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal indica os estados que não admitem mais transição.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Occupies diz se o agendamento ainda segura o horário do profissional.
// Só cancelado libera o slot.
func Occupies(s Status) bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition valida o ciclo scheduled → confirmed → in_progress →
// completed, com cancelled/no_show como saídas alternativas.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}

	if IsTerminal(from) {
		return httperr.ErrBusiness("invalid_state")
	}

	switch from {
	case StatusScheduled:
		switch to {
		case StatusConfirmed, StatusCancelled, StatusNoShow:
			return nil
		}
	case StatusConfirmed:
		switch to {
		case StatusInProgress, StatusCancelled, StatusNoShow:
			return nil
		}
	case StatusInProgress:
		switch to {
		case StatusCompleted, StatusCancelled:
			return nil
		}
	}

	return httperr.ErrBusiness("invalid_state")
}

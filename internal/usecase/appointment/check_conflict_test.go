package appointment

import (
	"context"
	"errors"
	"testing"

	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// stubGateway implementa só o que cada teste precisa; método não
// configurado explode, denunciando chamada inesperada.
type stubGateway struct {
	domain.Gateway

	slots    []string
	slotsErr error

	existing    []models.Appointment
	existingErr error

	listAll    []models.Appointment
	listAllErr error

	services    []models.Service
	servicesErr error

	created   *models.Appointment
	createErr error
	updateErr error

	clients []models.Client
	members []models.TeamMember
}

func (s *stubGateway) AvailableSlots(ctx context.Context, date string, teamMemberID uint) ([]string, error) {
	return s.slots, s.slotsErr
}

func (s *stubGateway) ListAppointmentsFor(ctx context.Context, date string, teamMemberID uint) ([]models.Appointment, error) {
	return s.existing, s.existingErr
}

func (s *stubGateway) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.listAll, s.listAllErr
}

func (s *stubGateway) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.services, s.servicesErr
}

func (s *stubGateway) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clients, nil
}

func (s *stubGateway) ListTeam(ctx context.Context) ([]models.TeamMember, error) {
	return s.members, nil
}

func (s *stubGateway) CreateAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	out := *ap
	out.ID = 42
	return &out, nil
}

func (s *stubGateway) UpdateAppointment(ctx context.Context, id uint, ap *models.Appointment) (*models.Appointment, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	out := *ap
	out.ID = id
	return &out, nil
}

func TestCheckConflictSlotAvailable(t *testing.T) {
	uc := NewCheckConflict(&stubGateway{slots: []string{"09:00", "10:00"}})

	res := uc.Execute(context.Background(), CheckConflictInput{
		Date:         "2026-03-15",
		TeamMemberID: 10,
		Time:         "10:00",
	})

	if res.HasConflict || res.Advisory != "" {
		t.Fatalf("available slot must pass clean: %+v", res)
	}
}

func TestCheckConflictRealConflict(t *testing.T) {
	uc := NewCheckConflict(&stubGateway{
		slots: []string{"09:00"},
		existing: []models.Appointment{
			{ID: 7, AppointmentTime: "10:00", Status: "confirmed"},
		},
	})

	res := uc.Execute(context.Background(), CheckConflictInput{
		Date:         "2026-03-15",
		TeamMemberID: 10,
		Time:         "10:00",
	})

	if !res.HasConflict {
		t.Fatal("expected conflict")
	}
	if res.Message != ConflictMessage {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestCheckConflictSelfOccupationExcluded(t *testing.T) {
	// Em edição, o slot "ocupado" pode ser o próprio agendamento.
	editingID := uint(7)

	uc := NewCheckConflict(&stubGateway{
		slots: []string{"09:00"},
		existing: []models.Appointment{
			{ID: 7, AppointmentTime: "10:00", Status: "confirmed"},
		},
	})

	res := uc.Execute(context.Background(), CheckConflictInput{
		Date:                 "2026-03-15",
		TeamMemberID:         10,
		Time:                 "10:00",
		ExcludeAppointmentID: &editingID,
	})

	if res.HasConflict {
		t.Fatalf("own appointment must not block its edit: %+v", res)
	}
}

func TestCheckConflictCancelledDoesNotBlock(t *testing.T) {
	uc := NewCheckConflict(&stubGateway{
		slots: []string{"09:00"},
		existing: []models.Appointment{
			{ID: 7, AppointmentTime: "10:00", Status: "cancelled"},
		},
	})

	res := uc.Execute(context.Background(), CheckConflictInput{
		Date:         "2026-03-15",
		TeamMemberID: 10,
		Time:         "10:00",
	})

	if res.HasConflict {
		t.Fatal("cancelled appointment must not hold the slot")
	}
}

func TestCheckConflictFailsOpen(t *testing.T) {
	tests := []struct {
		name string
		gw   *stubGateway
	}{
		{"slots unavailable", &stubGateway{slotsErr: errors.New("timeout")}},
		{"listing unavailable", &stubGateway{
			slots:       []string{"09:00"},
			existingErr: errors.New("timeout"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := NewCheckConflict(tt.gw).Execute(context.Background(), CheckConflictInput{
				Date:         "2026-03-15",
				TeamMemberID: 10,
				Time:         "10:00",
			})

			if res.HasConflict {
				t.Fatal("verification failure must never report a conflict")
			}
			if res.Advisory != AdvisoryMessage {
				t.Fatalf("expected advisory, got %+v", res)
			}
		})
	}
}

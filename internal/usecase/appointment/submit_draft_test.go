package appointment

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/StudioBellaVista/salon-admin/internal/audit"
	"github.com/StudioBellaVista/salon-admin/internal/backend"
	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

func submitFixture(gw *stubGateway) (*SubmitDraft, *LocalStore) {
	local := NewLocalStore()
	dispatcher := audit.NewDispatcher(audit.New(zerolog.Nop()))
	uc := NewSubmitDraft(gw, NewCheckConflict(gw), local, dispatcher)
	return uc, local
}

func readyDraft() domain.Draft {
	d := domain.NewDraft("d1")
	d.ClientID = 7
	d.TeamMemberID = 10
	d.ServiceIDs = models.IDList{2, 5}
	d.Date = "2026-03-15"
	d.Time = "10:00"
	return *d
}

func submitCatalog() []models.Service {
	return []models.Service{
		{ID: 2, Name: "Manicure", Price: 35, DurationMinutes: 45},
		{ID: 5, Name: "Limpeza de Pele", Price: 120, DurationMinutes: 90},
	}
}

func TestSubmitDraftPersists(t *testing.T) {
	gw := &stubGateway{
		slots:    []string{"10:00"},
		services: submitCatalog(),
	}
	uc, local := submitFixture(gw)

	outcome, err := uc.Execute(context.Background(), readyDraft())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if outcome.Kind != OutcomePersisted {
		t.Fatalf("expected persisted outcome, got %s", outcome.Kind)
	}
	if outcome.Appointment.ID != 42 {
		t.Fatalf("expected backend id, got %d", outcome.Appointment.ID)
	}
	if outcome.Appointment.TotalPrice.Float64() != 155 {
		t.Fatalf("totals must come from current catalog, got %v", outcome.Appointment.TotalPrice)
	}
	if len(local.List()) != 0 {
		t.Fatal("successful save must not touch the local store")
	}
}

func TestSubmitDraftLocalFallbackOnTransportFailure(t *testing.T) {
	gw := &stubGateway{
		slots:     []string{"10:00"},
		services:  submitCatalog(),
		createErr: &backend.TransportError{},
	}
	uc, local := submitFixture(gw)

	outcome, err := uc.Execute(context.Background(), readyDraft())
	if err != nil {
		t.Fatalf("transport failure must not surface as error: %v", err)
	}

	if outcome.Kind != OutcomeLocalOnly {
		t.Fatalf("expected local_only outcome, got %s", outcome.Kind)
	}
	if outcome.Reason != LocalOnlyCause {
		t.Fatalf("unexpected reason: %q", outcome.Reason)
	}
	if !outcome.Appointment.LocalOnly || outcome.Appointment.LocalOnlyID == "" {
		t.Fatalf("record must carry the local-only mark: %+v", outcome.Appointment)
	}

	stored := local.List()
	if len(stored) != 1 {
		t.Fatalf("expected 1 local record, got %d", len(stored))
	}
	if stored[0].LocalOnlyID != outcome.Appointment.LocalOnlyID {
		t.Fatal("local store and outcome must agree on the id")
	}
}

func TestSubmitDraftValidationErrorPropagates(t *testing.T) {
	gw := &stubGateway{
		slots:     []string{"10:00"},
		services:  submitCatalog(),
		createErr: &backend.ValidationError{Status: 400, Message: "Horário fora do expediente"},
	}
	uc, local := submitFixture(gw)

	_, err := uc.Execute(context.Background(), readyDraft())
	if !backend.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if backend.ValidationMessage(err) != "Horário fora do expediente" {
		t.Fatalf("message must survive verbatim, got %q", backend.ValidationMessage(err))
	}
	if len(local.List()) != 0 {
		t.Fatal("validation failure must not create a local record")
	}
}

func TestSubmitDraftBlockedByConflict(t *testing.T) {
	gw := &stubGateway{
		slots: []string{"09:00"},
		existing: []models.Appointment{
			{ID: 3, AppointmentTime: "10:00", Status: "confirmed"},
		},
		services: submitCatalog(),
	}
	uc, _ := submitFixture(gw)

	_, err := uc.Execute(context.Background(), readyDraft())
	if !backend.IsValidation(err) {
		t.Fatalf("expected conflict on the validation channel, got %v", err)
	}
	if backend.ValidationMessage(err) != ConflictMessage {
		t.Fatalf("unexpected message: %q", backend.ValidationMessage(err))
	}
}

func TestSubmitDraftIncompleteDraftRejected(t *testing.T) {
	uc, _ := submitFixture(&stubGateway{})

	d := readyDraft()
	d.ServiceIDs = nil

	_, err := uc.Execute(context.Background(), d)
	if !httperr.IsBusiness(err, "no_services_selected") {
		t.Fatalf("expected no_services_selected, got %v", err)
	}
}

func TestSubmitDraftUpdateUsesEditingID(t *testing.T) {
	gw := &stubGateway{
		slots:    []string{"10:00"},
		services: submitCatalog(),
	}
	uc, _ := submitFixture(gw)

	d := readyDraft()
	editing := uint(42)
	d.Editing = &editing

	outcome, err := uc.Execute(context.Background(), d)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if outcome.Appointment.ID != 42 {
		t.Fatalf("update must keep the id, got %d", outcome.Appointment.ID)
	}
}

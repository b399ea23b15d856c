package appointment

import (
	"testing"

	"github.com/StudioBellaVista/salon-admin/internal/httperr"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

func completeDraft() *Draft {
	d := NewDraft("d1")
	d.ClientID = 7
	d.TeamMemberID = 10
	d.ServiceIDs = models.IDList{2, 5}
	d.Date = "2026-03-15"
	d.Time = "10:00"
	return d
}

func TestNewDraftStartsClean(t *testing.T) {
	d := NewDraft("d1")

	if d.State != StateDrafting {
		t.Fatalf("expected drafting, got %s", d.State)
	}
	if d.Status != string(StatusScheduled) {
		t.Fatalf("expected initial status scheduled, got %q", d.Status)
	}
	if d.Editing != nil {
		t.Fatal("new draft must not carry an editing id")
	}
}

func TestEditDraftFlattensRefs(t *testing.T) {
	ap := &models.Appointment{
		ID:              42,
		Client:          models.Ref{ID: 7, Name: "Maria"},
		TeamMember:      models.Ref{ID: 10, Name: "Ana"},
		Services:        models.IDList{2, 5},
		AppointmentDate: "2026-03-15",
		AppointmentTime: "10:00",
		Status:          "confirmed",
		Notes:           "alergia a esmalte X",
	}

	d := EditDraft("d2", ap)

	if d.Editing == nil || *d.Editing != 42 {
		t.Fatal("editing id must be carried")
	}
	if d.ClientID != 7 || d.TeamMemberID != 10 {
		t.Fatalf("refs must flatten to ids, got %d/%d", d.ClientID, d.TeamMemberID)
	}
	if len(d.ServiceIDs) != 2 {
		t.Fatalf("services must be copied, got %v", d.ServiceIDs)
	}
}

func TestSetTeamMemberPrunesIneligibleServices(t *testing.T) {
	d := completeDraft()
	d.ServiceIDs = models.IDList{1, 2, 5}

	d.SetTeamMember(10, testMembers()) // especialidades {2, 5}

	if len(d.ServiceIDs) != 2 || d.ServiceIDs[0] != 2 || d.ServiceIDs[1] != 5 {
		t.Fatalf("expected pruned [2 5], got %v", d.ServiceIDs)
	}
}

func TestConflictGenerationDiscardsStaleResult(t *testing.T) {
	d := completeDraft()

	genOld := d.BeginConflictCheck()
	genNew := d.BeginConflictCheck()

	// Resposta atrasada da checagem antiga chega por último: descartada.
	if applied := d.ApplyConflictResult(genNew, false, "", ""); !applied {
		t.Fatal("current-generation result must apply")
	}
	if applied := d.ApplyConflictResult(genOld, true, "horário ocupado", ""); applied {
		t.Fatal("stale result must be discarded")
	}

	if d.State != StateDrafting {
		t.Fatalf("expected drafting after clean result, got %s", d.State)
	}
	if d.ConflictMessage != "" {
		t.Fatalf("stale conflict message leaked: %q", d.ConflictMessage)
	}
}

func TestConflictBlocksAndFieldChangeUnblocks(t *testing.T) {
	d := completeDraft()

	gen := d.BeginConflictCheck()
	d.ApplyConflictResult(gen, true, "horário ocupado", "")

	if d.State != StateConflictBlocked {
		t.Fatalf("expected conflict_blocked, got %s", d.State)
	}
	if err := d.CanSubmit(); !httperr.IsBusiness(err, "time_conflict") {
		t.Fatalf("blocked draft must not submit, got %v", err)
	}

	// Trocar o horário limpa o bloqueio.
	d.SetTime("11:00")

	if d.State != StateDrafting {
		t.Fatalf("expected drafting after time change, got %s", d.State)
	}
	if d.ConflictMessage != "" {
		t.Fatal("conflict message must clear on field change")
	}
	if err := d.CanSubmit(); err != nil {
		t.Fatalf("unblocked draft should submit: %v", err)
	}
}

func TestCanSubmitRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Draft)
		code string
	}{
		{"missing client", func(d *Draft) { d.ClientID = 0 }, "missing_required_fields"},
		{"missing team member", func(d *Draft) { d.TeamMemberID = 0 }, "missing_required_fields"},
		{"no services", func(d *Draft) { d.ServiceIDs = nil }, "no_services_selected"},
		{"missing date", func(d *Draft) { d.Date = "" }, "missing_date_or_time"},
		{"missing time", func(d *Draft) { d.Time = "" }, "missing_date_or_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := completeDraft()
			tt.mut(d)
			if err := d.CanSubmit(); !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestToAppointmentRecomputesTotals(t *testing.T) {
	d := completeDraft()

	ap := d.ToAppointment(testCatalog())

	if ap.TotalPrice.Float64() != 155 {
		t.Fatalf("expected recomputed price 155, got %v", ap.TotalPrice)
	}
	if ap.TotalDuration != 135 {
		t.Fatalf("expected recomputed duration 135, got %d", ap.TotalDuration)
	}
	if ap.Status != string(StatusScheduled) {
		t.Fatalf("expected scheduled, got %q", ap.Status)
	}
	if ap.ID != 0 {
		t.Fatal("create payload must not carry an id")
	}

	d.Editing = ptrUint(42)
	if got := d.ToAppointment(testCatalog()); got.ID != 42 {
		t.Fatalf("update payload must carry the editing id, got %d", got.ID)
	}
}

func ptrUint(v uint) *uint { return &v }

func TestSnapshotDetachesFromDraft(t *testing.T) {
	d := completeDraft()
	snap := d.Snapshot()

	snap.ServiceIDs[0] = 99
	snap.Time = "12:00"
	snap.State = StateSubmitting

	if d.ServiceIDs[0] != 2 {
		t.Fatalf("snapshot must not share the services slice, got %v", d.ServiceIDs)
	}
	if d.Time != "10:00" || d.State != StateDrafting {
		t.Fatal("mutating the snapshot must not touch the draft")
	}
	if snap.Generation() != d.Generation() {
		t.Fatal("snapshot must carry the current generation")
	}
}

package appointment

import (
	"reflect"
	"testing"

	"github.com/StudioBellaVista/salon-admin/internal/models"
)

func testCatalog() []models.Service {
	return []models.Service{
		{ID: 1, Name: "Corte Feminino", Price: 80, DurationMinutes: 60},
		{ID: 2, Name: "Manicure", Price: 35, DurationMinutes: 45},
		{ID: 5, Name: "Limpeza de Pele", Price: 120, DurationMinutes: 90},
	}
}

func testMembers() []models.TeamMember {
	return []models.TeamMember{
		{ID: 10, Name: "Ana", Specialties: models.IDList{2, 5}},
		{ID: 11, Name: "Bia", Specialties: models.IDList{}},
	}
}

func TestServiceOptionsFiltersBySpecialty(t *testing.T) {
	options := ServiceOptions(10, testMembers(), testCatalog())

	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	// Ordem do catálogo preservada.
	if options[0].Value != 2 || options[1].Value != 5 {
		t.Fatalf("unexpected options: %+v", options)
	}
	if options[0].Label != "Manicure - R$ 35.00" {
		t.Fatalf("unexpected label: %q", options[0].Label)
	}
	if options[1].Label != "Limpeza de Pele - R$ 120.00" {
		t.Fatalf("unexpected label: %q", options[1].Label)
	}
}

func TestServiceOptionsEmptyCases(t *testing.T) {
	tests := []struct {
		name         string
		teamMemberID uint
	}{
		{"no member selected", 0},
		{"unknown member", 99},
		{"member without specialties", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := ServiceOptions(tt.teamMemberID, testMembers(), testCatalog())
			if options == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(options) != 0 {
				t.Fatalf("expected no options, got %+v", options)
			}
		})
	}
}

func TestTotals(t *testing.T) {
	price, duration := Totals(models.IDList{2, 5}, testCatalog())

	if price != 155 {
		t.Fatalf("expected price 155, got %v", price)
	}
	if duration != 135 {
		t.Fatalf("expected duration 135, got %d", duration)
	}

	// Ids fora do catálogo contribuem zero.
	price, duration = Totals(models.IDList{2, 999}, testCatalog())
	if price != 35 || duration != 45 {
		t.Fatalf("unknown id must contribute zero, got %v/%d", price, duration)
	}
}

func TestEligibleOnly(t *testing.T) {
	kept := EligibleOnly(models.IDList{1, 2, 5}, 10, testMembers())
	if !reflect.DeepEqual(kept, models.IDList{2, 5}) {
		t.Fatalf("expected [2 5], got %v", kept)
	}

	kept = EligibleOnly(models.IDList{1, 2}, 99, testMembers())
	if len(kept) != 0 {
		t.Fatalf("unknown member keeps nothing, got %v", kept)
	}
}

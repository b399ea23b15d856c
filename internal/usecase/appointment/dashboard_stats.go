package appointment

import (
	"context"

	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/models"
	"github.com/StudioBellaVista/salon-admin/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type DashboardStatsInput struct {
	StartDate string
	EndDate   string
	Status    string
}

type DashboardStatsOutput struct {
	domain.Stats

	DailyRevenue   float64 `json:"daily_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`

	TotalClients     int `json:"total_clients"`
	TotalTeamMembers int `json:"total_team_members"`
	TotalServices    int `json:"total_services"`

	// Aviso não-fatal quando alguma leitura degradou para coleção vazia.
	Notice string `json:"notice,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type DashboardStats struct {
	gw    domain.Gateway
	local *LocalStore
}

func NewDashboardStats(gw domain.Gateway, local *LocalStore) *DashboardStats {
	return &DashboardStats{gw: gw, local: local}
}

// Execute monta as estatísticas do painel. Falha de leitura nunca é
// fatal: a coleção vira vazia e o aviso sobe junto com números zerados.
func (uc *DashboardStats) Execute(
	ctx context.Context,
	in DashboardStatsInput,
) DashboardStatsOutput {

	var out DashboardStatsOutput
	degraded := false

	appointments, err := uc.gw.ListAppointments(ctx)
	if err != nil {
		appointments = []models.Appointment{}
		degraded = true
	}

	// Registros salvos só localmente entram na conta: foram salvos,
	// só não chegaram ao backend ainda.
	appointments = append(appointments, uc.local.List()...)

	now := timezone.Now()

	filtered := domain.Filter{
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    in.Status,
	}.Apply(appointments, now.Location())

	out.Stats = domain.Compute(filtered, now)
	out.DailyRevenue = domain.Revenue(filtered, domain.RevenueDaily, now)
	out.MonthlyRevenue = domain.Revenue(filtered, domain.RevenueMonthly, now)

	if clients, err := uc.gw.ListClients(ctx); err == nil {
		out.TotalClients = len(clients)
	} else {
		degraded = true
	}

	if members, err := uc.gw.ListTeam(ctx); err == nil {
		out.TotalTeamMembers = len(members)
	} else {
		degraded = true
	}

	if services, err := uc.gw.ListServices(ctx); err == nil {
		out.TotalServices = len(services)
	} else {
		degraded = true
	}

	if degraded {
		out.Notice = "Backend indisponível: números parciais."
	}

	return out
}

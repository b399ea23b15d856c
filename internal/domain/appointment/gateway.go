package appointment

import (
	"context"

	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// Gateway é o contrato com o backend do salão. O backend é o único
// árbitro de verdade; tudo aqui é leitura/escrita remota best-effort.
type Gateway interface {
	// -------- Health --------
	Health(ctx context.Context) (map[string]any, error)

	// -------- Clients --------
	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) (*models.Client, error)
	UpdateClient(ctx context.Context, id uint, c *models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	// -------- Team --------
	ListTeam(ctx context.Context) ([]models.TeamMember, error)
	CreateTeamMember(ctx context.Context, m *models.TeamMember) (*models.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id uint, m *models.TeamMember) (*models.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uint) error

	// -------- Services --------
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, s *models.Service) (*models.Service, error)
	UpdateService(ctx context.Context, id uint, s *models.Service) (*models.Service, error)
	DeleteService(ctx context.Context, id uint) error

	// -------- Appointments --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAppointmentsFor(ctx context.Context, date string, teamMemberID uint) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id uint, ap *models.Appointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Availability --------
	AvailableSlots(ctx context.Context, date string, teamMemberID uint) ([]string, error)
}

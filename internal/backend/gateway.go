package backend

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/StudioBellaVista/salon-admin/internal/domain/appointment"
	"github.com/StudioBellaVista/salon-admin/internal/models"
)

// --------------------------------------------------
// Health
// --------------------------------------------------

func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	data, err := c.do(ctx, "GET", "/api/health/", nil)
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err := json.Unmarshal(data, &body); err != nil {
		// O health devolve JSON arbitrário; corpo não-objeto ainda é ok.
		return map[string]any{"raw": string(data)}, nil
	}
	return body, nil
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	out := []models.Client{}
	if err := c.listInto(ctx, "/api/clients/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateClient(ctx context.Context, in *models.Client) (*models.Client, error) {
	data, err := c.post(ctx, "/api/clients/", in)
	if err != nil {
		return nil, err
	}
	var created models.Client
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateClient(ctx context.Context, id uint, in *models.Client) (*models.Client, error) {
	data, err := c.put(ctx, fmt.Sprintf("/api/clients/%d/", id), in)
	if err != nil {
		return nil, err
	}
	var updated models.Client
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteClient(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/clients/%d/", id))
}

// --------------------------------------------------
// Team
// --------------------------------------------------

func (c *Client) ListTeam(ctx context.Context) ([]models.TeamMember, error) {
	out := []models.TeamMember{}
	if err := c.listInto(ctx, "/api/team/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTeamMember(ctx context.Context, in *models.TeamMember) (*models.TeamMember, error) {
	data, err := c.post(ctx, "/api/team/", in)
	if err != nil {
		return nil, err
	}
	var created models.TeamMember
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTeamMember(ctx context.Context, id uint, in *models.TeamMember) (*models.TeamMember, error) {
	data, err := c.put(ctx, fmt.Sprintf("/api/team/%d/", id), in)
	if err != nil {
		return nil, err
	}
	var updated models.TeamMember
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTeamMember(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/team/%d/", id))
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	out := []models.Service{}
	if err := c.listInto(ctx, "/api/services/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, in *models.Service) (*models.Service, error) {
	data, err := c.post(ctx, "/api/services/", in)
	if err != nil {
		return nil, err
	}
	var created models.Service
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateService(ctx context.Context, id uint, in *models.Service) (*models.Service, error) {
	data, err := c.put(ctx, fmt.Sprintf("/api/services/%d/", id), in)
	if err != nil {
		return nil, err
	}
	var updated models.Service
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteService(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/services/%d/", id))
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := []models.Appointment{}
	if err := c.listInto(ctx, "/api/appointments/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAppointmentsFor(
	ctx context.Context,
	date string,
	teamMemberID uint,
) ([]models.Appointment, error) {

	path := fmt.Sprintf(
		"/api/appointments/?appointment_date=%s&team_member=%d",
		date, teamMemberID,
	)

	// Consulta de desambiguação de conflito: sempre fresca, nunca cacheada.
	data, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	out := []models.Appointment{}
	if err := UnmarshalList(data, &out); err != nil {
		c.log.Warn().Str("path", path).Msg("unrecognized list shape, returning empty")
	}
	return out, nil
}

func (c *Client) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	data, err := c.do(ctx, "GET", fmt.Sprintf("/api/appointments/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var ap models.Appointment
	if err := json.Unmarshal(data, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in *models.Appointment) (*models.Appointment, error) {
	data, err := c.post(ctx, "/api/appointments/", in)
	if err != nil {
		return nil, err
	}
	var created models.Appointment
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateAppointment(ctx context.Context, id uint, in *models.Appointment) (*models.Appointment, error) {
	data, err := c.put(ctx, fmt.Sprintf("/api/appointments/%d/", id), in)
	if err != nil {
		return nil, err
	}
	var updated models.Appointment
	if err := json.Unmarshal(data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/appointments/%d/", id))
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (c *Client) AvailableSlots(
	ctx context.Context,
	date string,
	teamMemberID uint,
) ([]string, error) {

	path := fmt.Sprintf(
		"/api/appointments/available_slots/?date=%s&team_member=%d",
		date, teamMemberID,
	)

	data, err := c.do(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		AvailableSlots []string `json:"available_slots"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}

	return body.AvailableSlots, nil
}

// Compile-time check
var _ domain.Gateway = (*Client)(nil)

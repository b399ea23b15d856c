package models

import "time"

type Appointment struct {
	ID uint `json:"id"`

	Client         Ref    `json:"client"`
	ClientName     string `json:"client_name,omitempty"`
	TeamMember     Ref    `json:"team_member"`
	TeamMemberName string `json:"team_member_name,omitempty"`

	Services     IDList `json:"services"`
	ServicesList string `json:"services_list,omitempty"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`

	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`

	// Sempre recalculados a partir dos serviços selecionados,
	// nunca editáveis de forma independente.
	TotalPrice    Money `json:"total_price"`
	TotalDuration int   `json:"total_duration"`

	CreatedAt time.Time `json:"created_at,omitempty"`

	// Marcado quando o registro só existe localmente porque o backend
	// estava indisponível no momento do save.
	LocalOnly      bool   `json:"local_only,omitempty"`
	LocalOnlyID    string `json:"local_only_id,omitempty"`
	LocalOnlyCause string `json:"local_only_cause,omitempty"`
}

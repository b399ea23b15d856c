package models

type Service struct {
	ID uint `json:"id"`

	Name        string `json:"name"`
	ServiceType string `json:"service_type"`
	Description string `json:"description,omitempty"`

	DurationMinutes int   `json:"duration_minutes"`
	Price           Money `json:"price"`

	IsActive bool `json:"is_active"`
}

// Tipos de serviço aceitos pelo backend.
const (
	ServiceTypeCabelo    = "cabelo"
	ServiceTypeUnhas     = "unhas"
	ServiceTypeBarba     = "barba"
	ServiceTypeMaquiagem = "maquiagem"
	ServiceTypePele      = "pele"
)

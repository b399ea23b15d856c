package models

type TeamMember struct {
	ID uint `json:"id"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`

	Address  string `json:"address,omitempty"`
	HireDate string `json:"hire_date,omitempty"`
	IsActive bool   `json:"is_active"`

	// Serviços que o profissional pode executar. O backend ora envia
	// uma lista de ids, ora uma lista de objetos.
	Specialties IDList `json:"specialties"`
}

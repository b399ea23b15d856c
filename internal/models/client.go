package models

import "time"

// Cliente do salão, dono dos dados é o backend; aqui só trafegamos.
type Client struct {
	ID uint `json:"id"`

	Name string `json:"name"`

	// Phone guarda só dígitos; PhoneDisplay sai mascarado
	// (DD) DDDDD-DDDD e nunca volta para o backend.
	Phone        string `json:"phone"`
	PhoneDisplay string `json:"phone_display,omitempty"`

	Email string `json:"email,omitempty"`

	Address  string `json:"address,omitempty"`
	Birthday string `json:"birthday,omitempty"`
	Gender   string `json:"gender,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshalTolerant(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"number", `80.5`, 80.5},
		{"numeric string", `"35.00"`, 35},
		{"null", `null`, 0},
		{"empty string", `""`, 0},
		{"junk string", `"grátis"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			if err := json.Unmarshal([]byte(tt.body), &m); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if m.Float64() != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, m.Float64())
			}
		})
	}
}

func TestMoneySumsAfterDecode(t *testing.T) {
	// Mistura de formatos na mesma lista: tudo soma como número.
	var list []struct {
		Price Money `json:"total_price"`
	}
	body := `[{"total_price": "40.00"}, {"total_price": 25}, {"total_price": null}]`
	if err := json.Unmarshal([]byte(body), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	var total float64
	for _, item := range list {
		total += item.Price.Float64()
	}
	if total != 65.00 {
		t.Fatalf("expected 65.00, got %v", total)
	}
}
